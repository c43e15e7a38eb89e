package desktop

// Options holds the tunable geometry of a desktop. Zero fields are replaced
// by their defaults.
type Options struct {
	Limits         Limits
	DefaultSize    Size
	MenuBarHeight  int
	VerticalOffset int // rows above true center for newly opened windows
	ClickThreshold int
	ZIndexBase     int
	Icons          IconLayout
}

// DefaultOptions returns the stock desktop geometry.
func DefaultOptions() Options {
	return Options{
		Limits:         Limits{MinWidth: 30, MinHeight: 8},
		DefaultSize:    Size{Width: 60, Height: 16},
		MenuBarHeight:  1,
		VerticalOffset: 4,
		ClickThreshold: DefaultClickThreshold,
		ZIndexBase:     50,
		Icons: IconLayout{
			Width:   10,
			Height:  3,
			Margin:  2,
			Top:     1,
			Spacing: 4,
		},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Limits.MinWidth <= 0 {
		o.Limits.MinWidth = d.Limits.MinWidth
	}
	if o.Limits.MinHeight <= 0 {
		o.Limits.MinHeight = d.Limits.MinHeight
	}
	if o.DefaultSize.Width <= 0 {
		o.DefaultSize.Width = d.DefaultSize.Width
	}
	if o.DefaultSize.Height <= 0 {
		o.DefaultSize.Height = d.DefaultSize.Height
	}
	if o.MenuBarHeight < 0 {
		o.MenuBarHeight = d.MenuBarHeight
	}
	if o.VerticalOffset < 0 {
		o.VerticalOffset = 0
	}
	if o.ClickThreshold <= 0 {
		o.ClickThreshold = d.ClickThreshold
	}
	if o.Icons.Width <= 0 {
		o.Icons.Width = d.Icons.Width
	}
	if o.Icons.Height <= 0 {
		o.Icons.Height = d.Icons.Height
	}
	if o.Icons.Spacing <= 0 {
		o.Icons.Spacing = d.Icons.Spacing
	}
	return o
}
