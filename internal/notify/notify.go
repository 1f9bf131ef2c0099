// Package notify decouples write paths from the listeners that care
// about them, such as the dashboard cache.
package notify

import "context"

// Events receives change notifications after successful writes.
type Events interface {
	OrdersChanged(ctx context.Context)
}

// Func adapts a plain function to the Events interface.
type Func func(ctx context.Context)

func (f Func) OrdersChanged(ctx context.Context) { f(ctx) }

type nop struct{}

func (nop) OrdersChanged(context.Context) {}

// Nop returns an Events sink that ignores every notification.
func Nop() Events { return nop{} }
