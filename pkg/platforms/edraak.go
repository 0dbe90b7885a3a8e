package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// Edraak hosts Arabic-first courses with English alongside; the catalog
// publishes no per-course language markup and no duration. Specialization
// pages show the organization as a logo image, so that variant reads the
// alt attribute instead of text.
func init() {
	adapter.Register(adapter.Config{
		Platform:  "edraak",
		Hosts:     []string{"edraak.org"},
		Mode:      browser.ModeDynamic,
		Languages: []normalize.Language{normalize.English, normalize.Arabic},
		Variants: []adapter.Variant{
			{
				Name:  "specialization",
				Match: []string{"specialization"},
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//h1[@class='heroTitle']",
					}},
					Organization: adapter.FieldSpec{
						Strategy:  adapter.Attribute,
						Attribute: "alt",
						Locators: []string{
							"//img[@class='logoImg']",
						},
					},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//p[@class='descriptionParagraph']",
						},
					},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//h4[@class='syllabusItemTitle']",
							"//div[@class='programSectionContent']/div/div/ul/li/span",
						}},
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//span[@class='teacherName']",
					}},
				},
			},
			{
				Name: "course",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//h1[@class='heroTitle']",
					}},
					Organization: adapter.FieldSpec{Locators: []string{
						"//h4[@class='organizationName']",
					}},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//p[@class='descriptionParagraph']",
						},
					},
					Programme: adapter.ProgrammeSpec{
						Items: adapter.FieldSpec{Locators: []string{
							"//h4[@class='syllabusItemTitle']",
							"//div[@class='programSectionContent']/div/div/ul/li/span",
						}},
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//span[@class='teacherName']",
					}},
				},
			},
		},
	})
}
