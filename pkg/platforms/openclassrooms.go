package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// OpenClassrooms publishes single courses and multi-course paths. Path
// pages render their header client-side, so the title needs a mutation
// wait. Course language is inferred from the brief; the catalog mixes
// French and English content under the same layout.
func init() {
	adapter.Register(adapter.Config{
		Platform:       "openclassrooms",
		Hosts:          []string{"openclassrooms.com"},
		Mode:           browser.ModeDynamic,
		Organization:   "OpenClassrooms",
		DetectLanguage: true,
		Variants: []adapter.Variant{
			{
				Name:  "path",
				Match: []string{"/paths/"},
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{
						Strategy: adapter.TextAfterMutation,
						Locators: []string{
							"//*[@id='path_details_screen']/section[1]/div[1]/div/div[1]/div/h1",
						},
					},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//*[@id='path_details_description']/div/div/p",
						},
					},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//*[@id='path_details_description']/div/div/ol/li",
							"//*[@id='path_details_description']/div/div/ul[1]/li",
						}},
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//*[@id='path_details_screen']/section[1]/div[1]/div/div[1]/div/div/div[1]/div[2]/div/div/div/span/p",
						},
						Rule: normalize.DurationHours,
					},
				},
			},
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//*[@id='course-header']/div[1]/div/div/div/a/h1",
					}},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//*[@id='mainContent']/article/div[3]/div/div/div/div[2]/div/section/div/div[1]/p",
						},
					},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//div[@class='course-part-summary__title']/h3",
						}},
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//*[@id='course-header']/div[2]/div/div/div/div/div[1]/ul/li[1]/span",
						},
						Rule: normalize.DurationHours,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//div[@itemprop='name']",
					}},
				},
			},
		},
	})
}
