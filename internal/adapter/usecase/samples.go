package usecase

import "sem-planner/internal/core/port"

const (
	plansEndpoint    = "/api/v1/sem/plans"
	keywordsEndpoint = "/api/v1/sem/keywords/generate"
)

func budgets(shopping, search, pmax float64) port.BudgetsInput {
	return port.BudgetsInput{Shopping: &shopping, Search: &search, PMax: &pmax}
}

// SampleRequests returns request bodies covering typical advertisers.
func (u *PlanUseCase) SampleRequests() []port.SampleRequest {
	return SampleRequests()
}

// SampleRequests is the static catalogue behind PlanUseCase.SampleRequests.
func SampleRequests() []port.SampleRequest {
	return []port.SampleRequest{
		planSample("Create Digital Marketing Agency Plan",
			"Sample request for creating a comprehensive SEM plan for a digital marketing agency",
			port.PlanInputs{
				BrandWebsite:      "https://digitalmarketingpro.com",
				CompetitorWebsite: "https://marketingexperts.com",
				ServiceLocations:  []string{"New York, NY", "Los Angeles, CA", "Chicago, IL"},
				Budgets:           budgets(2500, 5000, 3000),
			},
			"digital marketing services", "seo optimization", "ppc advertising", "social media marketing",
			"content marketing", "email marketing automation", "conversion rate optimization",
			"google ads management", "facebook advertising", "marketing analytics"),
		planSample("Create E-commerce Store Plan",
			"Sample request for an e-commerce business focusing on shopping campaigns",
			port.PlanInputs{
				BrandWebsite:      "https://trendy-fashion-store.com",
				CompetitorWebsite: "https://fashion-competitor.com",
				ServiceLocations:  []string{"United States", "Canada"},
				Budgets:           budgets(8000, 3000, 4000),
			},
			"women's clothing", "men's fashion", "trendy outfits", "designer clothes", "casual wear",
			"formal attire", "accessories", "shoes", "handbags", "jewelry"),
		planSample("Create Local Service Business Plan",
			"Sample request for a local service business with location-based targeting",
			port.PlanInputs{
				BrandWebsite:      "https://local-plumbing-services.com",
				CompetitorWebsite: "https://city-plumbers.com",
				ServiceLocations:  []string{"Miami, FL", "Fort Lauderdale, FL", "West Palm Beach, FL"},
				Budgets:           budgets(500, 3000, 1500),
			},
			"plumbing services", "emergency plumber", "drain cleaning", "pipe repair",
			"water heater installation", "bathroom plumbing", "kitchen plumbing", "leak detection",
			"sewer line repair", "plumbing contractor"),
		planSample("Create SaaS Company Plan",
			"Sample request for a software-as-a-service company",
			port.PlanInputs{
				BrandWebsite:      "https://project-management-saas.com",
				CompetitorWebsite: "https://competitor-pm-tool.com",
				ServiceLocations:  []string{"Global"},
				Budgets:           budgets(0, 6000, 4000),
			},
			"project management software", "team collaboration tools", "task management app",
			"project tracking", "agile project management", "team productivity",
			"project planning software", "workflow management", "project dashboard", "team communication"),
		keywordSample("Generate Keywords for Fitness Business",
			"Sample request for generating keywords for a fitness and wellness business",
			"https://fitness-wellness-center.com", "https://competitor-gym.com",
			"personal training", "fitness classes", "gym membership", "weight loss program",
			"strength training", "cardio workout", "yoga classes", "nutrition coaching",
			"fitness equipment", "wellness center"),
		keywordSample("Generate Keywords for Tech Startup",
			"Sample request for generating keywords for a technology startup",
			"https://ai-automation-startup.com", "",
			"artificial intelligence", "machine learning", "automation software", "ai solutions",
			"business automation", "intelligent systems", "data analytics", "predictive analytics",
			"ai consulting", "automation tools"),
		planSample("Create Restaurant Chain Plan",
			"Sample request for a restaurant chain with multiple locations",
			port.PlanInputs{
				BrandWebsite:      "https://gourmet-pizza-chain.com",
				CompetitorWebsite: "https://competitor-pizza.com",
				ServiceLocations:  []string{"Boston, MA", "Cambridge, MA", "Somerville, MA", "Newton, MA", "Brookline, MA"},
				Budgets:           budgets(1500, 4000, 2500),
			},
			"pizza delivery", "gourmet pizza", "italian restaurant", "pizza near me", "online pizza order",
			"pizza catering", "fresh pizza", "wood fired pizza", "pizza restaurant", "family dining"),
		planSample("Create Healthcare Practice Plan",
			"Sample request for a healthcare practice with specialized services",
			port.PlanInputs{
				BrandWebsite:      "https://advanced-dental-care.com",
				CompetitorWebsite: "https://competitor-dentist.com",
				ServiceLocations:  []string{"San Francisco, CA", "Oakland, CA", "San Jose, CA"},
				Budgets:           budgets(800, 3500, 2000),
			},
			"dental implants", "cosmetic dentistry", "teeth whitening", "orthodontics", "dental cleaning",
			"root canal treatment", "dental emergency", "family dentist", "pediatric dentistry", "oral surgery"),
	}
}

func planSample(name, description string, inputs port.PlanInputs, seeds ...string) port.SampleRequest {
	return port.SampleRequest{
		Name:        name,
		Description: description,
		Endpoint:    plansEndpoint,
		Method:      "POST",
		Data:        port.CreatePlanRequest{Inputs: inputs, SeedKeywords: seeds},
	}
}

func keywordSample(name, description, website, competitor string, seeds ...string) port.SampleRequest {
	return port.SampleRequest{
		Name:        name,
		Description: description,
		Endpoint:    keywordsEndpoint,
		Method:      "POST",
		Data:        port.GenerateKeywordsRequest{Website: website, CompetitorWebsite: competitor, SeedKeywords: seeds},
	}
}

// SamplePlanRequests returns the plan bodies of SampleRequests, used for
// seeding.
func SamplePlanRequests() []port.CreatePlanRequest {
	var out []port.CreatePlanRequest
	for _, s := range SampleRequests() {
		if req, ok := s.Data.(port.CreatePlanRequest); ok {
			out = append(out, req)
		}
	}
	return out
}
