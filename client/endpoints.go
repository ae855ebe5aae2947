package client

import "net/url"

const (
	DefaultBaseURL      = "http://localhost:5679/api"
	DefaultImageBaseURL = "http://localhost:5679/uploads/"
)

const (
	EndpointLogin      = "/user/login"
	EndpointSignup     = "/user/register"
	EndpointCategories = "/categories"
	EndpointItems      = "/items"
	EndpointOrders     = "/orders"
	EndpointMyOrders   = "/orders/my-orders"
	EndpointCreate     = "/orders/create"
)

func orderPath(id string) string {
	return EndpointOrders + "/" + url.PathEscape(id)
}

func cancelPath(id string) string {
	return orderPath(id) + "/cancel"
}
