// Package site holds the static marketing payload and renders the public
// pages. The payload is fixed at compile time; the handler serves it both
// as rendered HTML and as JSON for the front-end widget.
package site

// Stat is one headline metric card.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
	Trend string `json:"trend"` // up or down
}

// Tier is one service package.
type Tier struct {
	Name    string   `json:"name"`
	Price   string   `json:"price"`
	Tag     string   `json:"tag"`
	Badge   string   `json:"badge"`
	Bullets []string `json:"bullets"`
	Wide    bool     `json:"wide,omitempty"`
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Testimonial is one client quote.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
}

// CompareRow is one row of the tier comparison table, keyed by tier name.
type CompareRow struct {
	Feature string            `json:"feature"`
	Cells   map[string]string `json:"cells"`
}

// Logo is one partner/tooling logo.
type Logo struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// PageData is the full homepage payload.
type PageData struct {
	Images        []string      `json:"images"`
	Steps         []string      `json:"steps"`
	FAQ           []FAQItem     `json:"faq"`
	Stats         []Stat        `json:"stats"`
	Tiers         []Tier        `json:"tiers"`
	Testimonials  []Testimonial `json:"testimonials"`
	CompareRows   []CompareRow  `json:"compare_rows"`
	Logos         []Logo        `json:"logos"`
	ServiceLabels []string      `json:"service_labels"`
	OGImageURL    string        `json:"og_image_url"`
	LogoURL       string        `json:"logo_url"`
	IGHandle      string        `json:"ig_handle"`
}

// Content returns the homepage payload.
func Content() *PageData {
	return &PageData{
		Images: []string{
			"https://images.unsplash.com/photo-1521737604893-d14cc237f11d?auto=format&fit=crop&w=1600&q=80",
			"https://images.unsplash.com/photo-1522252234503-e356532cafd5?auto=format&fit=crop&w=1600&q=80",
			"https://images.unsplash.com/photo-1529101091764-c3526daf38fe?auto=format&fit=crop&w=1600&q=80",
			"https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&w=1600&q=80",
			"https://images.unsplash.com/photo-1556761175-4b46a572b786?auto=format&fit=crop&w=1600&q=80",
			"https://images.unsplash.com/photo-1519389950473-47ba0277781c?auto=format&fit=crop&w=1600&q=80",
			"https://images.unsplash.com/photo-1542744173-05336fcc7ad4?auto=format&fit=crop&w=1600&q=80",
			"https://images.unsplash.com/photo-1498050108023-c5249f4df085?auto=format&fit=crop&w=1600&q=80",
			"https://images.unsplash.com/photo-1529101091764-c3526daf38fe?auto=format&fit=crop&w=1600&q=80",
		},
		Steps: []string{"Discovery", "Strategy", "Tech Integration", "AI Empowerment", "Growth & Optimization"},
		FAQ: []FAQItem{
			{
				Question: "Do I need a website to start?",
				Answer:   "Not necessarily. We can ship a starter landing page so your brand has a clean digital home.",
			},
			{
				Question: "How does AI help a small team?",
				Answer:   "From on-brand captioning to best-time posting and chatbot lead capture, AI saves hours and lifts consistency.",
			},
			{
				Question: "How long before I see results?",
				Answer:   "Engagement typically uplifts within 1–2 months; conversions/ROI often clarify within 3–6 months with consistent campaigns.",
			},
			{
				Question: "Can I start with social only?",
				Answer:   "Yes. Begin with IGNITE and upgrade to funnels/automation as you grow.",
			},
		},
		Stats: []Stat{
			{Label: "Total Users", Value: "50,789", Delta: "8.5% from yesterday", Trend: "up"},
			{Label: "Total Orders", Value: "20,393", Delta: "1.3% from last week", Trend: "up"},
			{Label: "Total Sales", Value: "$60,000", Delta: "4.3% from yesterday", Trend: "down"},
			{Label: "Total Pending", Value: "5,040", Delta: "1.8% from yesterday", Trend: "up"},
		},
		Tiers: []Tier{
			{
				Name: "IGNITE", Price: "PHP 75,000 / month", Tag: "Smart Social Foundations", Badge: "Best for startups",
				Bullets: []string{
					"20 posts • 25 stories • 3 reels",
					"AI-assisted captions & hashtags",
					"Content calendar + auto-scheduling",
					"Basic landing/portfolio + hosting",
					"Monthly analytics report",
				},
			},
			{
				Name: "SYNC", Price: "PHP 95,000 / month", Tag: "Social + Web Alignment", Badge: "Lead-gen ready",
				Bullets: []string{
					"30 posts • 35 stories • 6 reels",
					"Campaign strategy & funnel planning",
					"Landing page optimization + CRM",
					"AI trend suggestions • conversion copy",
					"Lead & engagement dashboard",
				},
			},
			{
				Name: "VISION", Price: "PHP 120,000 / month", Tag: "AI-Enhanced Growth Engine", Badge: "Min. 3-month plan",
				Bullets: []string{
					"25 posts • 25 stories • 8 reels",
					"Predictive campaign builder",
					"Social listening & competitor analysis",
					"Bi-weekly analytics & retargeting",
					"Advanced dashboards & automation",
				},
			},
			{
				Name: "AUTHORITY", Price: "PHP 150,000 / month", Tag: "Omnipresence + Automation", Badge: "Thought leadership",
				Bullets: []string{
					"40 posts • 40 stories • 10 reels",
					"Omnichannel (IG/TikTok/FB/LinkedIn)",
					"Sentiment heatmap & campaign intelligence",
					"Dynamic website + CRM automation",
				},
			},
			{
				Name: "ASCEND", Price: "PHP 200,000+ / month", Tag: "Full Growth Ecosystem", Badge: "Enterprise",
				Bullets: []string{
					"50+ posts across platforms",
					"Full funnel strategy & ad support",
					"Weekly trend & business intelligence",
					"Enterprise automation & personalization",
				},
				Wide: true,
			},
		},
		Testimonials: []Testimonial{
			{Quote: "From scattered posts to a real funnel—we saw lift in 6 weeks.", Author: "Amira", Role: "COO"},
			{Quote: "Clean, premium, and measurable. Exactly what we needed.", Author: "Rami", Role: "CMO"},
			{Quote: "Finally feels like our brand—and it converts.", Author: "Leah", Role: "Founder"},
			{Quote: "Strategy-first content. The dashboards made ROI obvious.", Author: "Noah", Role: "Head of Growth"},
		},
		CompareRows: []CompareRow{
			{
				Feature: "Posts / Stories / Reels",
				Cells:   map[string]string{"IGNITE": "20 / 25 / 3", "SYNC": "30 / 35 / 6", "VISION": "25 / 25 / 8", "AUTHORITY": "40 / 40 / 10", "ASCEND": "50+ / 50+ / 10+"},
			},
			{
				Feature: "AI-assisted captions & hashtags",
				Cells:   map[string]string{"IGNITE": "✓", "SYNC": "✓", "VISION": "✓", "AUTHORITY": "✓", "ASCEND": "✓"},
			},
			{
				Feature: "Content calendar & auto-scheduling",
				Cells:   map[string]string{"IGNITE": "✓", "SYNC": "✓", "VISION": "✓", "AUTHORITY": "✓", "ASCEND": "✓"},
			},
			{
				Feature: "Campaign strategy & funnel planning",
				Cells:   map[string]string{"IGNITE": "—", "SYNC": "✓", "VISION": "✓", "AUTHORITY": "✓", "ASCEND": "✓"},
			},
			{
				Feature: "Landing page / Website + CRM",
				Cells:   map[string]string{"IGNITE": "Basic site + hosting", "SYNC": "Landing + CRM", "VISION": "Optimization + CRM", "AUTHORITY": "Dynamic site + CRM automation", "ASCEND": "Enterprise personalization"},
			},
			{
				Feature: "Analytics cadence",
				Cells:   map[string]string{"IGNITE": "Monthly", "SYNC": "Leads dashboard", "VISION": "Bi-weekly + retargeting", "AUTHORITY": "Advanced dashboards", "ASCEND": "Weekly BI"},
			},
			{
				Feature: "Social listening & competitor analysis",
				Cells:   map[string]string{"IGNITE": "—", "SYNC": "—", "VISION": "✓", "AUTHORITY": "✓", "ASCEND": "✓"},
			},
			{
				Feature: "Ad support",
				Cells:   map[string]string{"IGNITE": "—", "SYNC": "—", "VISION": "—", "AUTHORITY": "—", "ASCEND": "✓"},
			},
		},
		Logos: []Logo{
			{Src: "https://dummyimage.com/140x40/ffffff/0b0f1a.png&text=Stripe", Alt: "Stripe"},
			{Src: "https://dummyimage.com/140x40/ffffff/0b0f1a.png&text=Shopify", Alt: "Shopify"},
			{Src: "https://dummyimage.com/140x40/ffffff/0b0f1a.png&text=HubSpot", Alt: "HubSpot"},
			{Src: "https://dummyimage.com/140x40/ffffff/0b0f1a.png&text=Notion", Alt: "Notion"},
			{Src: "https://dummyimage.com/140x40/ffffff/0b0f1a.png&text=Figma", Alt: "Figma"},
			{Src: "https://dummyimage.com/140x40/ffffff/0b0f1a.png&text=Klaviyo", Alt: "Klaviyo"},
			{Src: "https://dummyimage.com/140x40/ffffff/0b0f1a.png&text=Meta+Ads", Alt: "Meta Ads"},
			{Src: "https://dummyimage.com/140x40/ffffff/0b0f1a.png&text=Google+Ads", Alt: "Google Ads"},
		},
		ServiceLabels: []string{"Content", "Reels", "Community", "Paid Social", "Landing Page", "CRM & Automation", "Analytics"},
		OGImageURL:    "https://images.unsplash.com/photo-1556761175-4b46a572b786?auto=format&fit=crop&w=1600&q=80",
		LogoURL:       "https://dummyimage.com/200x200/0b0f1a/ffffff.png&text=L",
		IGHandle:      "liorae",
	}
}
