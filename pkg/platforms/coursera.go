package platforms

import (
	"github.com/coursepeek/coursepeek/internal/browser"
	"github.com/coursepeek/coursepeek/internal/normalize"
	"github.com/coursepeek/coursepeek/pkg/adapter"
)

// Coursera serves three page layouts: specialization landing pages, course
// pages under /learn/, and professional certificate pages. Languages hide
// behind an info dialog that must be opened before extraction.
func init() {
	adapter.Register(adapter.Config{
		Platform: "coursera",
		Hosts:    []string{"coursera.org"},
		Mode:     browser.ModeDynamic,
		Reveal: []string{
			"//div[2]/div/button/span/span",
		},
		InstructorCap: 3,
		Variants: []adapter.Variant{
			{
				Name:  "specialization",
				Match: []string{"/specializations/"},
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//h1[@data-e2e='hero-title']",
					}},
					Organization: adapter.FieldSpec{Locators: []string{
						"//*[@id='courses']/div/div/div/div[3]/div/div[2]/div[2]/div/div[2]/a/span",
					}},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//*[@id='courses']/div/div/div/div[1]/div/div/div/div[1]/div/div/div/div/p[1]/span/span",
						},
					},
					Programme: adapter.ProgrammeSpec{
						SectionTitles: adapter.FieldSpec{Locators: []string{
							"//div[@data-testid='accordion-item']/div/div/div/div[1]/div/h3/a",
						}},
						SectionItems: "//div[@data-testid='accordion-item'][%d]/div/div/div/div[2]/div/div/div/div/div/div/div[2]/div/div/div",
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//*[@id='rendered-content']/div/main/section[2]/div/div/div[1]/div[2]/section/div[2]/div[3]/div[1]",
							"//div[@class='cds-119 cds-Typography-base css-h1jogs cds-121'][contains(., 'hours') or contains(., 'months') or contains(., 'weeks')]",
						},
						Rule: normalize.DurationAuto,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//a[@data-track-component='hero_instructor']/span",
					}},
					Languages: adapter.FieldSpec{Locators: []string{
						"//*[@role='dialog']/div[2]/div[2]/p[2]",
					}},
				},
			},
			{
				Name:  "course",
				Match: []string{"/learn/"},
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//h1[@data-e2e='hero-title']",
					}},
					Organization: adapter.FieldSpec{Locators: []string{
						"//*[@id='modules']/div/div/div/div[3]/div/div[2]/div[2]/div/div[2]/a/span",
					}},
					Brief: adapter.FieldSpec{Locators: []string{
						"//*[@id='modules']/div/div/div/div[1]/div/div/div/div[1]/div/p[1]",
					}},
					Programme: adapter.ProgrammeSpec{
						SectionTitles: adapter.FieldSpec{Locators: []string{
							"//div[@data-testid='accordion-item']/div/div/div/div/button/span/span/span/h3",
							"//*[@class='cds-AccordionRoot-container cds-AccordionRoot-silent']/div[1]/button/span/span/span/h3",
						}},
						SectionItems: "//div[@data-testid='accordion-item'][%d]/div/div/div/div/div/div/div/div/div/p",
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//*[@id='rendered-content']/div/main/section[2]/div/div/div[2]/div/div/section/div[2]/div[2]/div[1]",
							"//div[@class='cds-119 cds-Typography-base css-h1jogs cds-121'][contains(., 'hours') or contains(., 'months') or contains(., 'weeks')]",
						},
						Rule: normalize.DurationAuto,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//a[@data-track-component='hero_instructor']/span",
					}},
					Languages: adapter.FieldSpec{Locators: []string{
						"//*[@role='dialog']/div[2]/div[2]/p[2]",
					}},
				},
			},
			{
				Name: "certificate",
				Fields: adapter.Fields{
					Title: adapter.FieldSpec{Locators: []string{
						"//h1[@data-e2e='hero-title']",
					}},
					Organization: adapter.FieldSpec{Locators: []string{
						"//*[@id='courses']/div/div/div/div[3]/div/div[2]/div[2]/div/div[2]/a/span",
					}},
					Brief: adapter.FieldSpec{
						Strategy: adapter.TextAll,
						Locators: []string{
							"//*[@id='courses']/div/div/div/div[1]/div/div/div/div[1]/div/div/div/div/p[1]/span/span",
						},
					},
					Programme: adapter.ProgrammeSpec{
						SectionTitles: adapter.FieldSpec{Locators: []string{
							"//div[@data-testid='accordion-item']/div/div/div/div[1]/div/h3/a",
						}},
						SectionItems: "//div[@data-testid='accordion-item'][%d]/div/div/div/div[2]/div/div/div/div/div/div/div[2]/div/div/div",
					},
					Duration: adapter.FieldSpec{
						Locators: []string{
							"//div[@class='cds-119 cds-Typography-base css-h1jogs cds-121'][contains(., 'hours') or contains(., 'months') or contains(., 'weeks')]",
						},
						Rule: normalize.DurationAuto,
					},
					Instructors: adapter.FieldSpec{Locators: []string{
						"//a[@data-track-component='hero_instructor']/span",
					}},
					Languages: adapter.FieldSpec{Locators: []string{
						"//*[@role='dialog']/div[2]/div[2]/p[2]",
					}},
				},
			},
		},
	})
}
