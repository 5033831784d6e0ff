package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/milkround/internal/domain"
)

func FormatProfile(p *domain.CustomerProfile) string {
	value := func(s string) string {
		if s == "" {
			return Dim("--")
		}
		return Bold(s)
	}
	since := Dim("--")
	if p.StartedOn != nil {
		since = Bold(p.StartedOn.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("Name "), value(p.Name))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Phone"), value(p.Phone))
	fmt.Fprintf(&b, "%s  %s", Dim("Since"), since)
	return RenderBox("Customer", b.String())
}
