package types

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// responseKind enumerates the success outcomes a handler can produce. Handlers
// never write status codes themselves; Send is the single place the
// kind-to-status correspondence lives.
type responseKind int

const (
	kindAcknowledged responseKind = iota
	kindCreated
	kindPayload
	kindNoContent
)

// Response is the closed success-path outcome of a request handler.
type Response struct {
	kind  responseKind
	items []Todo
}

// Acknowledged is an empty 200, used when a mutation succeeded but there is
// nothing to return.
func Acknowledged() Response {
	return Response{kind: kindAcknowledged}
}

// Created is an empty 201, signalling a new resource now exists.
func Created() Response {
	return Response{kind: kindCreated}
}

// Payload is a 200 with a JSON array body, used uniformly whether the handler
// returns one todo or many.
func Payload(items []Todo) Response {
	if items == nil {
		items = []Todo{}
	}
	return Response{kind: kindPayload, items: items}
}

// NoContent is an empty 204, used for successful deletion.
func NoContent() Response {
	return Response{kind: kindNoContent}
}

// Send renders the outcome onto the transport.
func (r Response) Send(c *gin.Context) {
	switch r.kind {
	case kindCreated:
		c.Status(http.StatusCreated)
	case kindPayload:
		c.JSON(http.StatusOK, r.items)
	case kindNoContent:
		c.Status(http.StatusNoContent)
	default:
		c.Status(http.StatusOK)
	}
}
