package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// openSAP describes courses in one rendered-markdown block; duration and
// weekly effort appear inside it as "Duration:" and "Effort:" rows, so the
// whole block feeds the weeks-times-hours conversion.
func init() {
	adapter.Register(adapter.Config{
		Platform:     "opensap",
		Hosts:        []string{"open.sap.com"},
		Mode:         browser.ModeAuto,
		Organization: "SAP",
		Variants: []adapter.Variant{
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//div[@class='header-title']",
					}},
					Brief: adapter.FieldSpec{Locators: []string{
						"//div[@class='RenderedMarkdown']/p[1]",
					}},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//div[@class='RenderedMarkdown']/ul/li",
							"//div[@class='RenderedMarkdown']/p[4]",
						}},
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//div[@class='RenderedMarkdown']",
						},
						Rule: normalize.DurationWeeksByHours,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//div[@id='teachers']//div/h4/a",
					}},
					Languages: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//span[@class='shortinfo'][2]/span[2]",
						},
					},
				},
			},
		},
	})
}
