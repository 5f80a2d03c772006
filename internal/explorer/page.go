// SPDX-License-Identifier: MIT

package explorer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPage is returned by ParsePage for an unrecognised page name.
var ErrUnknownPage = errors.New("explorer: unknown page")

// Page selects one of the demo screens.
type Page int

const (
	PageSuperposition Page = iota
	PageGates
	PageMeasurement
	PageEntanglement
)

// pages lists the screens in tab order.
var pages = [...]Page{PageSuperposition, PageGates, PageMeasurement, PageEntanglement}

// String returns the flag spelling of p.
func (p Page) String() string {
	switch p {
	case PageSuperposition:
		return "superposition"
	case PageGates:
		return "gates"
	case PageMeasurement:
		return "measurement"
	case PageEntanglement:
		return "entanglement"
	default:
		return fmt.Sprintf("Page(%d)", int(p))
	}
}

// ParsePage accepts a page name in any case.
func ParsePage(s string) (Page, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, p := range pages {
		if p.String() == want {
			return p, nil
		}
	}

	return 0, fmt.Errorf("ParsePage %q: %w", s, ErrUnknownPage)
}

// next returns the page delta steps away in tab order, wrapping around.
func (p Page) next(delta int) Page {
	n := len(pages)
	return pages[((int(p)+delta)%n+n)%n]
}
