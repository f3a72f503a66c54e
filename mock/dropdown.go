package mock

import "github.com/fwojciec/searchdrop"

var (
	_ searchdrop.Dropdown         = (*Dropdown)(nil)
	_ searchdrop.LoadingIndicator = (*Dropdown)(nil)
)

// Dropdown is a mock implementation of searchdrop.Dropdown.
// SetLoadingFn is optional.
type Dropdown struct {
	ShowFn       func(listing *searchdrop.Listing)
	HideFn       func()
	SetLoadingFn func(loading bool)
}

func (d *Dropdown) Show(listing *searchdrop.Listing) {
	d.ShowFn(listing)
}

func (d *Dropdown) Hide() {
	d.HideFn()
}

func (d *Dropdown) SetLoading(loading bool) {
	if d.SetLoadingFn != nil {
		d.SetLoadingFn(loading)
	}
}
