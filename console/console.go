// Package console is the interactive terminal front end over app.App.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/darshan2121/PlantApp/app"
	"github.com/darshan2121/PlantApp/cart"
	"github.com/darshan2121/PlantApp/orders"
	"github.com/darshan2121/PlantApp/types"
)

// ErrQuit ends Run without an error.
var ErrQuit = errors.New("quit")

type command struct {
	usage string
	help  string
	run   func(s *Shell, ctx context.Context, args []string) error
}

// Shell reads one command per line. Plants may be referenced by their
// position in the last listing or by id.
type Shell struct {
	App *app.App

	in       *bufio.Scanner
	out      io.Writer
	category string
	listed   []types.Plant
	commands map[string]command
}

func New(a *app.App, in io.Reader, out io.Writer) *Shell {
	s := &Shell{App: a, in: bufio.NewScanner(in), out: out, category: types.AllCategoryKey}
	s.commands = map[string]command{
		"help":       {"help", "show commands", (*Shell).help},
		"lang":       {"lang [english|gujarati]", "switch or toggle the language", (*Shell).lang},
		"refresh":    {"refresh", "reload plants and categories", (*Shell).refresh},
		"categories": {"categories", "list categories", (*Shell).categories},
		"category":   {"category <key>", "filter the listing by category", (*Shell).setCategory},
		"plants":     {"plants [search]", "list plants", (*Shell).plants},
		"show":       {"show <plant>", "plant details", (*Shell).show},
		"add":        {"add <plant> [qty]", "add to cart (1-10)", (*Shell).add},
		"qty":        {"qty <plant> <n>", "set quantity, 0 removes", (*Shell).qty},
		"remove":     {"remove <plant>", "remove from cart", (*Shell).remove},
		"cart":       {"cart", "show the cart", (*Shell).showCart},
		"clear":      {"clear", "empty the cart", (*Shell).clear},
		"login":      {"login <email> <password>", "sign in", (*Shell).login},
		"signup":     {"signup", "create an account", (*Shell).signup},
		"logout":     {"logout", "sign out", (*Shell).logout},
		"whoami":     {"whoami", "show the signed-in user", (*Shell).whoami},
		"checkout":   {"checkout", "confirm the address and place the order", (*Shell).checkout},
		"book":       {"book <phone>", "book offline for nursery pickup", (*Shell).book},
		"orders":     {"orders", "list my orders", (*Shell).orders},
		"order":      {"order <id>", "order details and tracking", (*Shell).order},
		"cancel":     {"cancel <id>", "cancel an order", (*Shell).cancel},
		"bookings":   {"bookings", "list offline bookings", (*Shell).bookings},
		"quit":       {"quit", "exit", func(*Shell, context.Context, []string) error { return ErrQuit }},
	}
	s.commands["exit"] = s.commands["quit"]
	return s
}

func (s *Shell) t(key string, params map[string]any) string { return s.App.T(key, params) }

func (s *Shell) printf(format string, args ...any) { fmt.Fprintf(s.out, format, args...) }

func (s *Shell) prompt(label, def string) (string, bool) {
	if def != "" {
		s.printf("%s [%s]: ", label, def)
	} else {
		s.printf("%s: ", label)
	}
	if !s.in.Scan() {
		return "", false
	}
	if v := strings.TrimSpace(s.in.Text()); v != "" {
		return v, true
	}
	return def, true
}

// Run loops until quit or end of input.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("%s\n", s.t("app_title", nil))
	for {
		s.printf("> ")
		if !s.in.Scan() {
			s.printf("\n")
			return s.in.Err()
		}
		err := s.Exec(ctx, s.in.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			s.printf("%s: %s\n", s.t("error", nil), err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Exec runs a single command line.
func (s *Shell) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := s.commands[strings.ToLower(fields[0])]
	if !ok {
		return fmt.Errorf("unknown command %q, try help", fields[0])
	}
	return cmd.run(s, ctx, fields[1:])
}

func (s *Shell) help(context.Context, []string) error {
	names := []string{
		"plants", "categories", "category", "show", "add", "qty", "remove", "cart", "clear",
		"login", "signup", "logout", "whoami", "checkout", "book", "orders", "order", "cancel",
		"bookings", "refresh", "lang", "quit",
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, n := range names {
		c := s.commands[n]
		fmt.Fprintf(w, "  %s\t%s\n", c.usage, c.help)
	}
	return w.Flush()
}

func (s *Shell) lang(_ context.Context, args []string) error {
	if len(args) == 0 {
		s.App.ToggleLanguage()
	} else {
		l, err := types.ParseLanguage(args[0])
		if err != nil {
			return err
		}
		s.App.SetLanguage(l)
	}
	s.printf("%s\n", s.t("language_changed", nil))
	return nil
}

func (s *Shell) refresh(ctx context.Context, _ []string) error {
	if err := s.App.Refresh(ctx); err != nil {
		return err
	}
	s.listed = nil
	snap := s.App.Snapshot()
	s.printf("%d plants, %d categories\n", len(snap.Items.Items), len(snap.Categories.Categories))
	return nil
}

// ensureCatalog loads the catalog on first use so positions work before
// any listing was printed.
func (s *Shell) ensureCatalog(ctx context.Context) error {
	if len(s.App.Snapshot().Items.Items) == 0 {
		if err := s.App.Refresh(ctx); err != nil {
			return err
		}
	}
	if s.listed == nil {
		s.listed = s.App.Browse("", s.category)
	}
	return nil
}

func (s *Shell) categories(ctx context.Context, _ []string) error {
	if err := s.ensureCatalog(ctx); err != nil {
		return err
	}
	lang := s.App.Language()
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, c := range s.App.Snapshot().Categories.Categories {
		mark := " "
		if c.Key == s.category {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\n", mark, c.Key, c.Label(lang))
	}
	return w.Flush()
}

func (s *Shell) setCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		s.category = types.AllCategoryKey
		return nil
	}
	if err := s.ensureCatalog(ctx); err != nil {
		return err
	}
	for _, c := range s.App.Snapshot().Categories.Categories {
		if strings.EqualFold(c.Key, args[0]) {
			s.category = c.Key
			return s.plants(ctx, nil)
		}
	}
	return fmt.Errorf("unknown category %q", args[0])
}

func (s *Shell) plants(ctx context.Context, args []string) error {
	if err := s.ensureCatalog(ctx); err != nil {
		return err
	}
	lang := s.App.Language()
	s.listed = s.App.Browse(strings.Join(args, " "), s.category)
	if len(s.listed) == 0 {
		s.printf("-\n")
		return nil
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for i, p := range s.listed {
		stock := s.t("in_stock", nil)
		if !p.InStock {
			stock = s.t("out_of_stock", nil)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, p.DisplayName(lang),
			s.App.Translator().Category(lang, p.Category), stock, s.t("free", nil))
	}
	return w.Flush()
}

// resolve finds a plant by listing position, then by id.
func (s *Shell) resolve(ref string) (types.Plant, error) {
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(s.listed) {
		return s.listed[n-1], nil
	}
	if p, ok := s.App.Catalog.Find(ref); ok {
		return p, nil
	}
	if item, ok := s.App.Cart().Get(ref); ok {
		return item.Plant, nil
	}
	return types.Plant{}, fmt.Errorf("no plant %q", ref)
}

func (s *Shell) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: show <plant>")
	}
	if err := s.ensureCatalog(ctx); err != nil {
		return err
	}
	p, err := s.resolve(args[0])
	if err != nil {
		return err
	}
	lang := s.App.Language()
	tr := s.App.Translator()
	s.printf("%s\n", p.DisplayName(lang))
	s.printf("%s · %s\n", tr.Category(lang, p.Category), tr.Difficulty(lang, p.Difficulty))
	s.printf("%s\n", s.App.ImageURL(p))
	s.printf("%s %s\n", s.t("description", nil), p.DisplayDescription(lang))
	if benefits := p.DisplayBenefits(lang); len(benefits) > 0 {
		s.printf("%s\n", s.t("benefits", nil))
		for _, b := range benefits {
			s.printf("  • %s\n", b)
		}
	}
	return nil
}

func (s *Shell) add(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("usage: add <plant> [qty]")
	}
	if err := s.ensureCatalog(ctx); err != nil {
		return err
	}
	p, err := s.resolve(args[0])
	if err != nil {
		return err
	}
	n := 1
	if len(args) == 2 {
		if n, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("bad quantity %q", args[1])
		}
		if n > cart.MaxSelection {
			s.printf("%s\n", s.t("max_plants", map[string]any{"max": cart.MaxSelection}))
		}
	}
	c := s.App.AddSelection(p, n)
	s.printf("%s (%s)\n", s.t("added_to_cart", map[string]any{"name": p.DisplayName(s.App.Language())}),
		s.App.TN("items", c.Count(), nil))
	return nil
}

func (s *Shell) qty(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: qty <plant> <n>")
	}
	p, err := s.resolve(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad quantity %q", args[1])
	}
	s.App.UpdateQuantity(p.ID, n)
	return s.showCart(ctx, nil)
}

func (s *Shell) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: remove <plant>")
	}
	p, err := s.resolve(args[0])
	if err != nil {
		return err
	}
	s.App.RemoveFromCart(p.ID)
	return s.showCart(ctx, nil)
}

func (s *Shell) showCart(context.Context, []string) error {
	c := s.App.Cart()
	if c.IsEmpty() {
		s.printf("%s\n", s.t("cart_empty", nil))
		return nil
	}
	lang := s.App.Language()
	s.printf("%s\n", s.t("shopping_cart", nil))
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, item := range c.Items() {
		fmt.Fprintf(w, "  %s\t%s\t×%d\n", item.Plant.ID, item.Plant.DisplayName(lang), item.Quantity)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	s.printf("%s\n", s.t("total_plants", map[string]any{"count": c.Count()}))
	return nil
}

func (s *Shell) clear(context.Context, []string) error {
	s.App.ClearCart()
	s.printf("%s\n", s.t("cart_empty", nil))
	return nil
}

func (s *Shell) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <email> <password>")
	}
	if err := s.App.Login(ctx, args[0], args[1]); err != nil {
		return errors.New(s.App.Snapshot().Session.Err)
	}
	return s.welcome()
}

func (s *Shell) welcome() error {
	u := s.App.Snapshot().Session.User
	if u == nil {
		return nil
	}
	s.printf("%s\n", s.t("welcome_back", map[string]any{"name": u.DisplayName(s.App.Language())}))
	return nil
}

func (s *Shell) signup(ctx context.Context, _ []string) error {
	var p types.SignupPayload
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &p.Name}, {"Email", &p.Email}, {"Mobile", &p.Mobile}, {"Password", &p.Password},
		{s.t("field_area", nil), &p.Address.Area}, {s.t("field_ward", nil), &p.Address.Ward},
		{s.t("field_pinCode", nil), &p.Address.PinCode}, {s.t("field_city", nil), &p.Address.City},
		{s.t("field_state", nil), &p.Address.State}, {s.t("field_country", nil), &p.Address.Country},
	}
	for _, f := range fields {
		v, ok := s.prompt(f.label, "")
		if !ok {
			return io.ErrUnexpectedEOF
		}
		*f.dst = v
	}
	if p.Name == "" || p.Email == "" || p.Mobile == "" || p.Password == "" {
		return errors.New(s.t("fill_all_fields", nil))
	}
	if err := s.App.Signup(ctx, p); err != nil {
		return errors.New(s.App.Snapshot().Session.Err)
	}
	return s.welcome()
}

func (s *Shell) logout(ctx context.Context, _ []string) error {
	if err := s.App.Logout(ctx); err != nil {
		return err
	}
	s.printf("%s\n", s.t("logged_out", nil))
	return nil
}

func (s *Shell) whoami(context.Context, []string) error {
	snap := s.App.Snapshot()
	if snap.Session.User == nil {
		s.printf("%s\n", s.t("greeting", map[string]any{"name": s.t("friend", nil)}))
		return nil
	}
	u := snap.Session.User
	s.printf("%s\n", s.t("greeting", map[string]any{"name": u.DisplayName(snap.Language)}))
	if line := u.AddressLine(); line != "" {
		s.printf("%s\n", line)
	}
	return nil
}

func (s *Shell) checkout(ctx context.Context, _ []string) error {
	// cart and session problems are reported before asking for the address
	if s.App.Cart().IsEmpty() {
		return errors.New(s.t("empty_cart_message", nil))
	}
	if !s.App.Snapshot().Session.Authenticated() {
		return errors.New(s.t("login_required", nil))
	}
	d := s.App.Draft()
	a := &d.Address
	fields := []struct {
		key string
		dst *string
	}{
		{"field_area", &a.Area}, {"field_ward", &a.Ward}, {"field_pinCode", &a.PinCode},
		{"field_city", &a.City}, {"field_state", &a.State}, {"field_country", &a.Country},
		{"field_contactName", &a.ContactName}, {"field_contactPhone", &a.ContactPhone},
	}
	for _, f := range fields {
		v, ok := s.prompt(s.t(f.key, nil), *f.dst)
		if !ok {
			return io.ErrUnexpectedEOF
		}
		*f.dst = v
	}
	notes, ok := s.prompt("Notes", "")
	if !ok {
		return io.ErrUnexpectedEOF
	}
	d.Notes = notes

	o, err := s.App.PlaceOrder(ctx, d)
	if err != nil {
		return errors.New(s.App.Describe(err))
	}
	s.printf("%s\n", s.t("booking_success", nil))
	s.printf("%s\n", s.t("order_title", map[string]any{"id": o.Reference()}))
	s.printf("%s\n", s.t("estimated_delivery", map[string]any{"date": o.EstimatedDate()}))
	s.printf("%s\n", s.t("booking_thanks", nil))
	return nil
}

func (s *Shell) book(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: book <phone>")
	}
	o, err := s.App.Book(orders.Booking{Contact: args[0], PickupLocation: s.t("pickup_location", nil)})
	if errors.Is(err, orders.ErrEmptyCart) {
		return errors.New(s.t("empty_cart_message", nil))
	}
	if err != nil {
		return err
	}
	s.printf("%s\n", s.t("booking_success", nil))
	s.printf("%s\n", s.t("order_title", map[string]any{"id": o.ID}))
	return nil
}

func (s *Shell) orders(ctx context.Context, _ []string) error {
	if err := s.App.RefreshOrders(ctx); err != nil {
		return errors.New(s.App.Snapshot().Orders.Err)
	}
	list := s.App.Snapshot().Orders.Orders
	if len(list) == 0 {
		s.printf("%s\n%s\n", s.t("no_orders", nil), s.t("no_orders_hint", nil))
		return nil
	}
	lang := s.App.Language()
	s.printf("%s · %s\n", s.t("my_orders", nil), s.App.TN("orders", len(list), nil))
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, o := range list {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", o.ID, o.Reference(),
			s.App.Translator().Status(lang, o.Status), s.App.TN("items", o.TotalQuantity(), nil))
	}
	return w.Flush()
}

func (s *Shell) order(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: order <id>")
	}
	d := s.App.OrderDetail(ctx, args[0])
	if d.Failed() {
		return errors.New(s.t("details_failed", nil))
	}
	o := d.Order
	lang := s.App.Language()
	tr := s.App.Translator()
	s.printf("%s  %s\n", s.t("order_title", map[string]any{"id": o.Reference()}), tr.Status(lang, o.Status))
	s.printf("%s\n", o.AddressLine())
	s.printf("%s\n", s.t("estimated_delivery", map[string]any{"date": o.EstimatedDate()}))
	for _, item := range o.Items {
		s.printf("  %s ×%d\n", item.Item.Label(), item.Quantity)
	}
	if len(o.TrackingHistory) == 0 {
		s.printf("%s\n", s.t("no_tracking", nil))
		return nil
	}
	s.printf("%s\n", s.t("tracking_history", nil))
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, ev := range o.TrackingHistory {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", ev.Timestamp.Local().Format("02 Jan 15:04"),
			tr.Status(lang, ev.Status), ev.Description)
	}
	return w.Flush()
}

func (s *Shell) cancel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: cancel <id>")
	}
	o, err := s.App.CancelOrder(ctx, args[0])
	if err != nil {
		return errors.New(s.App.Snapshot().Orders.Err)
	}
	s.printf("%s\n", s.t("order_cancelled", map[string]any{"id": o.Reference()}))
	return nil
}

func (s *Shell) bookings(context.Context, []string) error {
	list := s.App.Snapshot().LocalOrders
	if len(list) == 0 {
		s.printf("%s\n", s.t("no_orders", nil))
		return nil
	}
	lang := s.App.Language()
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, o := range list {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", o.ID,
			s.t("booking_date", map[string]any{"date": o.BookingDate.Local().Format("02 Jan 2006")}),
			s.App.Translator().Status(lang, string(o.Status)),
			s.t("total_plants", map[string]any{"count": o.TotalPlants()}))
	}
	return w.Flush()
}
