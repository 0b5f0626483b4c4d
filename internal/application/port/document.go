package port

import "context"

// Document is the page surface a renderer manipulates.
// Implementations address elements by id on the page's root element.
type Document interface {
	// RemoveElement removes the element with id. Missing elements are ignored.
	RemoveElement(ctx context.Context, id string) error

	// AppendStyle appends a <style> element with id holding css to the head.
	AppendStyle(ctx context.Context, id, css string) error

	// AppendOverlay appends an empty <div> element with id to the body.
	AppendOverlay(ctx context.Context, id string) error
}
