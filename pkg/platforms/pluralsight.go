package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// Pluralsight course pages carry a table-of-contents outline and state the
// running time as a clock figure ("5h 23m"). The catalog is English-only.
func init() {
	adapter.Register(adapter.Config{
		Platform:     "pluralsight",
		Hosts:        []string{"pluralsight.com"},
		Mode:         browser.ModeDynamic,
		Organization: "PluralSight",
		Languages:    []normalize.Language{normalize.English},
		Variants: []adapter.Variant{
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//div[@id='course-page-hero']/h1",
					}},
					Brief: adapter.FieldSpec{Locators: []string{
						"//div[@class='course-content-about']/p",
					}},
					Programme: adapter.ProgrammeSpec{
						SectionTitles: adapter.FieldSpec{Locators: []string{
							"//div[@class='toc-title']",
						}},
						SectionItems: "//div[@class='toc-item'][%d]/div[2]/ul/li/a/span[@class='accordion-content__row__title']",
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//aside[@class='course-content-right show-for-large-up']/div[2]/div[4]/div[2]/text()",
						},
						Rule: normalize.DurationClock,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//div[@class='author-name']",
					}},
				},
			},
		},
	})
}
