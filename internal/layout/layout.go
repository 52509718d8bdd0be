// Package layout derives the top offset scrollable screens apply so their content
// starts below the fixed overlay header.
package layout

// Constants describe the fixed header geometry.
type Constants struct {
	ContentHeight int
	BottomPadding int
}

const (
	mobileContentHeight   = 24
	mobileBottomPadding   = 8
	terminalContentHeight = 1
	terminalBottomPadding = 1
)

// Mobile is the header geometry in device independent pixels.
func Mobile() Constants {
	return Constants{ContentHeight: mobileContentHeight, BottomPadding: mobileBottomPadding}
}

// Terminal is the header geometry in terminal rows.
func Terminal() Constants {
	return Constants{ContentHeight: terminalContentHeight, BottomPadding: terminalBottomPadding}
}

// Offset returns safeAreaTop + ContentHeight + BottomPadding. The inset is trusted
// platform input and is not clamped.
func Offset(consts Constants, safeAreaTop int) int {
	return safeAreaTop + consts.ContentHeight + consts.BottomPadding
}

// Deriver memoizes Offset on the last inset it was asked about, so repeated renders
// with an unchanged inset return the same value without recomputing.
type Deriver struct {
	consts       Constants
	lastTop      int
	lastOffset   int
	computed     bool
	computations int
}

func NewDeriver(consts Constants) *Deriver {
	return &Deriver{consts: consts}
}

func (d *Deriver) Offset(safeAreaTop int) int {
	if d.computed && d.lastTop == safeAreaTop {
		return d.lastOffset
	}

	d.lastTop = safeAreaTop
	d.lastOffset = Offset(d.consts, safeAreaTop)
	d.computed = true
	d.computations++

	return d.lastOffset
}

// Computations reports how many times the offset was actually evaluated.
func (d *Deriver) Computations() int {
	return d.computations
}

func (d *Deriver) Constants() Constants {
	return d.consts
}
