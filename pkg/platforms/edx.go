package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// edX keeps its metadata in an "about" info block whose rows are labeled
// lists ("Institution: ...", "Language: ..."). Instructor cards arrive
// after a client-side render, so they use a mutation wait.
func init() {
	adapter.Register(adapter.Config{
		Platform: "edx",
		Hosts:    []string{"edx.org"},
		Mode:     browser.ModeDynamic,
		Variants: []adapter.Variant{
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//div[@class='course-about desktop course-info-content']//div[1]/h1",
					}},
					Organization: adapter.FieldSpec{Locators: []string{
						"//div[@class='course-about desktop course-info-content']//div[1]/ul/li[1]/a",
						"//div[@class='course-about desktop course-info-content']/div[4]/div//ul/li[contains(., 'Institution:')]/a",
					}},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//div[@class='mt-2 lead-sm html-data']",
						},
					},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//div[@class='mt-2 html-data']/ul/li",
						}},
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//div[@class='course-about desktop course-info-content']/div[2]/div/div[1]/div/div/div[1]/div/div[1]",
						},
						Rule: normalize.DurationWeeksByHours,
					},
					Instructors: adapter.FieldSpec{
						Strategy: adapter.TextAllAfterMutation,
						Locators: []string{
							"//div[@class='instructor-card px-4 py-3.5 rounded']/div/h3",
						},
					},
					Languages: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//div[@class='course-about desktop course-info-content']/div[4]/div//ul/li[contains(., 'Language')]",
						},
					},
				},
			},
		},
	})
}
