package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// Udemy course pages render the curriculum lazily, so both the section
// list and the total length use mutation waits. Only free courses are
// extractable; a visible price block marks a paid listing.
func init() {
	adapter.Register(adapter.Config{
		Platform:     "udemy",
		Hosts:        []string{"udemy.com"},
		Mode:         browser.ModeDynamic,
		Organization: "Udemy",
		Reject: &adapter.Reject{
			Locator: "//div[@data-purpose='course-price-text']",
			Reason:  "paid course listing",
		},
		Variants: []adapter.Variant{
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//h1[@data-purpose='lead-title']",
					}},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//div[@data-purpose='safely-set-inner-html:description:description']/p",
						},
					},
					Programme: adapter.ProgrammeSpec{
						SectionTitles: adapter.FieldSpec{
							Strategy: adapter.TextAllAfterMutation,
							Locators: []string{
								"//span[@class='section--section-title--svpHP']",
							},
						},
						SectionItems: "//div[@data-purpose='course-curriculum']/div[2]/div[%d]/div[2]/div/ul/li/div/div/div/div/span",
					},
					Duration: adapter.FieldSpec{
						Strategy: adapter.TextAfterMutation,
						Locators: []string{
							"//span[@class='curriculum--content-length--V3vIz']/span/span",
						},
						Rule: normalize.DurationClock,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//span[@class='instructor-links--names--fJWai']/a",
					}},
					Languages: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//div[@data-purpose='lead-course-locale']",
						},
					},
				},
			},
		},
	})
}
