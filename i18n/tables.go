package i18n

var english = Table{
	"app_title":          "AMC Free Plants",
	"greeting":           "Hello, {{name}}",
	"friend":             "Friend",
	"find_plant":         "Find your perfect plant",
	"search":             "Search plants...",
	"free":               "FREE",
	"free_from_amc":      "Free from AMC",
	"plant_details":      "Plant Details",
	"description":        "Description:",
	"benefits":           "Benefits:",
	"add_to_cart":        "Add to Cart",
	"added_to_cart":      "{{name}} added to cart",
	"book_now":           "Book Now",
	"max_plants":         "Maximum {{max}} plants",
	"in_stock":           "In stock",
	"out_of_stock":       "Out of stock",
	"shopping_cart":      "Shopping Cart",
	"cart_empty":         "Your cart is empty",
	"empty_cart_title":   "Empty Cart",
	"empty_cart_message": "Please add plants to cart first",
	"total_plants":       "Total Plants: {{count}}",
	"book_plants":        "Book Plants",
	"items_one":          "{{count}} item",
	"items_other":        "{{count}} items",
	"orders_one":         "{{count}} order",
	"orders_other":       "{{count}} orders",
	"my_orders":          "My Orders",
	"order_title":        "Order #{{id}}",
	"no_orders":          "No orders yet",
	"no_orders_hint":     "Your booked plants will appear here",
	"booking_date":       "Booking Date: {{date}}",
	"estimated_delivery": "Estimated delivery: {{date}}",
	"quantity":           "Quantity: {{count}}",
	"pickup_location":    "📍 Pickup from AMC Nursery, Navrangpura",
	"booking_success":    "Your Plants are Booked!",
	"booking_thanks":     "Thank you from Ahmedabad Municipal Corporation. Your plants will be prepared soon.",
	"order_failed":       "Failed to place order",
	"order_cancelled":    "Order {{id}} cancelled",
	"details_failed":     "Failed to load order details.",
	"no_tracking":        "No tracking history.",
	"tracking_history":   "Tracking history",
	"error":              "Error",
	"fill_all_fields":    "Please fill in all fields",
	"invalid_phone":      "Please enter a valid phone number",
	"invalid_pincode":    "Please enter a valid 6-digit pin code",
	"required_field":     "{{field}} is required",
	"login_required":     "Please log in to place an order",
	"login_failed":       "Login failed",
	"signup_failed":      "Signup failed",
	"logged_out":         "Logged out",
	"welcome_back":       "Welcome back, {{name}}",
	"language_changed":   "Language: English",

	"field_area":         "Area",
	"field_ward":         "Ward",
	"field_pinCode":      "Pin code",
	"field_city":         "City",
	"field_state":        "State",
	"field_country":      "Country",
	"field_contactName":  "Contact name",
	"field_contactPhone": "Contact phone",

	"status_requested":        "Requested",
	"status_approved":         "Approved",
	"status_ready_for_pickup": "Ready for Pickup",
	"status_delivered":        "Delivered",
	"status_cancelled":        "Cancelled",

	"difficulty_easy":   "Easy",
	"difficulty_medium": "Medium",
	"difficulty_hard":   "Hard",

	"category_All":       "All",
	"category_Medicinal": "Medicinal",
	"category_Flowering": "Flowering",
	"category_Herbs":     "Herbs",
}

var gujarati = Table{
	"app_title":          "AMC મફત છોડ",
	"greeting":           "નમસ્તે, {{name}}",
	"friend":             "મિત્ર",
	"find_plant":         "તમારો યોગ્ય છોડ શોધો",
	"search":             "છોડ શોધો...",
	"free":               "મફત",
	"free_from_amc":      "AMC તરફથી મફત",
	"plant_details":      "છોડની વિગતો",
	"description":        "વર્ણન:",
	"benefits":           "ફાયદાઓ:",
	"add_to_cart":        "કાર્ટમાં ઉમેરો",
	"added_to_cart":      "{{name}} કાર્ટમાં ઉમેર્યું",
	"book_now":           "હવે બુક કરો",
	"max_plants":         "મહત્તમ {{max}} છોડ",
	"in_stock":           "ઉપલબ્ધ",
	"out_of_stock":       "ઉપલબ્ધ નથી",
	"shopping_cart":      "શોપિંગ કાર્ટ",
	"cart_empty":         "તમારું કાર્ટ ખાલી છે",
	"empty_cart_title":   "ખાલી કાર્ટ",
	"empty_cart_message": "કૃપા કરીને પહેલા કાર્ટમાં છોડ ઉમેરો",
	"total_plants":       "કુલ છોડ: {{count}}",
	"book_plants":        "છોડ બુક કરો",
	"items_one":          "{{count}} આઇટમ",
	"items_other":        "{{count}} આઇટમસ",
	"orders_one":         "{{count}} ઓર્ડર",
	"orders_other":       "{{count}} ઓર્ડરસ",
	"my_orders":          "મારા ઓર્ડર",
	"order_title":        "ઓર્ડર #{{id}}",
	"no_orders":          "હજુ સુધી કોઈ ઓર્ડર નથી",
	"no_orders_hint":     "તમારા બુક કરેલા છોડ અહીં દેખાશે",
	"booking_date":       "બુકિંગ તારીખ: {{date}}",
	"estimated_delivery": "અંદાજિત ડિલિવરી: {{date}}",
	"quantity":           "સંખ્યા: {{count}}",
	"pickup_location":    "📍 AMC નર્સરી, નવરંગપુરા થી લો",
	"booking_success":    "તમારા છોડ બુક થઈ ગયા!",
	"booking_thanks":     "અમદાવાદ મહાનગરપાલિકા તરફથી આભાર. તમારા છોડ જલ્દીથી તૈયાર કરવામાં આવશે.",
	"order_failed":       "ઓર્ડર આપવામાં નિષ્ફળ",
	"order_cancelled":    "ઓર્ડર {{id}} રદ કર્યો",
	"details_failed":     "ઓર્ડરની વિગતો લોડ કરવામાં નિષ્ફળ.",
	"no_tracking":        "કોઈ ટ્રેકિંગ ઇતિહાસ નથી.",
	"tracking_history":   "ટ્રેકિંગ ઇતિહાસ",
	"error":              "ભૂલ",
	"fill_all_fields":    "કૃપા કરીને બધી માહિતી ભરો",
	"invalid_phone":      "કૃપા કરીને યોગ્ય ફોન નંબર દાખલ કરો",
	"invalid_pincode":    "કૃપા કરીને યોગ્ય 6 અંકનો પિન કોડ દાખલ કરો",
	"required_field":     "{{field}} જરૂરી છે",
	"login_required":     "ઓર્ડર આપવા માટે કૃપા કરીને લોગિન કરો",
	"logged_out":         "લોગઆઉટ થયું",
	"welcome_back":       "ફરી સ્વાગત છે, {{name}}",
	"language_changed":   "ભાષા: ગુજરાતી",

	"field_area":         "વિસ્તાર",
	"field_ward":         "વોર્ડ",
	"field_pinCode":      "પિન કોડ",
	"field_city":         "શહેર",
	"field_state":        "રાજ્ય",
	"field_country":      "દેશ",
	"field_contactName":  "સંપર્ક નામ",
	"field_contactPhone": "સંપર્ક ફોન",

	"status_requested":        "વિનંતી કરેલ",
	"status_approved":         "મંજૂર",
	"status_ready_for_pickup": "લેવા માટે તૈયાર",
	"status_delivered":        "પહોંચાડેલ",

	"difficulty_easy":   "સરળ",
	"difficulty_medium": "મધ્યમ",
	"difficulty_hard":   "મુશ્કેલ",

	"category_All":       "બધા",
	"category_Medicinal": "ઔષધીય",
	"category_Flowering": "ફૂલવાળા",
	"category_Herbs":     "વનસ્પતિ",
}
