package partials

import (
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// FlashData carries the one-shot messages a single render displays.
type FlashData struct {
	Success []string
	Error   []string
}

// HasMessages reports whether anything is queued for display.
func (f FlashData) HasMessages() bool {
	return len(f.Success) > 0 || len(f.Error) > 0
}

// Flashes renders the queued messages as banners above the page content,
// or nothing when the queue is empty.
func Flashes(data FlashData) gomponents.Node {
	if !data.HasMessages() {
		return nil
	}

	return html.Div(
		html.Class("mx-auto max-w-md space-y-2 pt-6 px-4"),
		gomponents.Map(data.Success, func(msg string) gomponents.Node {
			return flashBanner("border-green-500 bg-green-50 text-green-800", msg)
		}),
		gomponents.Map(data.Error, func(msg string) gomponents.Node {
			return flashBanner("border-red-500 bg-red-50 text-red-800", msg)
		}),
	)
}

func flashBanner(colors, message string) gomponents.Node {
	return html.Div(
		html.Class("rounded-lg border-l-4 p-4 text-sm shadow "+colors),
		gomponents.Attr("role", "alert"),
		gomponents.Text(message),
	)
}
