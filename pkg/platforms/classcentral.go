package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// Class Central aggregates courses from other providers, so the
// organization is the upstream provider link. Long descriptions collapse
// behind a truncation wrapper whose class changes with the state, hence
// the paired locators.
func init() {
	adapter.Register(adapter.Config{
		Platform:       "classcentral",
		Hosts:          []string{"classcentral.com"},
		Mode:           browser.ModeAuto,
		DetectLanguage: true,
		Variants: []adapter.Variant{
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//h1[@class='head-2 medium-up-head-1 small-down-margin-bottom-xsmall']",
					}},
					Organization: adapter.FieldSpec{Locators: []string{
						"//a[@class='link-gray-underline text-1']",
					}},
					Brief: adapter.FieldSpec{Locators: []string{
						"//div[@class='truncatable-area is-truncated wysiwyg text-1 line-wide']",
						"//div[@class='wysiwyg text-1 line-wide']",
					}},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//div[@class='truncatable-area is-truncated wysiwyg text-1 line-wide']/ul/li",
							"//div[@class='wysiwyg text-1 line-wide']/ul/li",
						}},
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//div[@id='details-contents']/ul/li/div[2]/span[contains(., 'hour')]",
						},
						Rule: normalize.DurationWeeksByHours,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//div[@class='course-noncollapsable-section small-down-padding-medium padding-vert-medium']/p",
					}},
				},
			},
		},
	})
}
