package content

// Built-in fallback content. Storage rows override these trees field by
// field; anything never edited keeps rendering from here.

var defaultHeroImages = []string{
	"https://orecrgcfrlpivjgxjnln.supabase.co/storage/v1/object/public/event-images/Arctic%20Expedition%20Yacht%20Sunset.png",
	"https://orecrgcfrlpivjgxjnln.supabase.co/storage/v1/object/public/event-images/Luxury%20Train%20Sunset.png",
	"https://orecrgcfrlpivjgxjnln.supabase.co/storage/v1/object/public/event-images/Skier%20Sunset%20Run.png",
	"https://orecrgcfrlpivjgxjnln.supabase.co/storage/v1/object/public/event-images/Yacht%20Pastel%20Dawn.png",
}

var defaultCollage = HomeCollage{
	Image1: "https://mkuxagqihufulgpqfgyq.supabase.co/storage/v1/object/public/Images/Modern%20Penthouse%20Sunset.png",
	Image2: "https://hoirqrkdgbmvpwutwuwj.supabase.co/storage/v1/object/public/assets/assets/dd25faeb-a6b1-4533-ba9f-ff44f4a432f6_1600w.png",
	Image3: "https://hoirqrkdgbmvpwutwuwj.supabase.co/storage/v1/object/public/assets/assets/79110221-94d4-4269-aa0d-d814a1ecce47_800w.png",
	Image4: "https://hoirqrkdgbmvpwutwuwj.supabase.co/storage/v1/object/public/assets/assets/5e0cc8c1-98d6-4482-819b-ee34a4a0224a_800w.png",
}

var defaultCards = HomeCards{
	Image1: "https://hoirqrkdgbmvpwutwuwj.supabase.co/storage/v1/object/public/assets/assets/3b711722-4ed1-4cbd-8051-2aaf1e9e7aa0_800w.png",
	Image2: "https://hoirqrkdgbmvpwutwuwj.supabase.co/storage/v1/object/public/assets/assets/502638e3-1bc0-482a-b2fd-68c29dd6499e_1600w.png",
	Image3: "https://hoirqrkdgbmvpwutwuwj.supabase.co/storage/v1/object/public/assets/assets/1d89286c-ccbb-4fa7-8822-03ac022a6748_800w.png",
}

var defaultBranding = HomeBranding{
	LogoLight:             "/assets/logo/logo-gold-white.png",
	LogoDark:              "/assets/logo/logo-gold-dark.png",
	LogoFallback:          "/assets/logo/logo-white.png",
	TransparentBackground: "rgba(0,0,0,0)",
	SolidBackground:       "rgba(255,255,255,0.85)",
}

const (
	defaultHeroImage      = "https://mkuxagqihufulgpqfgyq.supabase.co/storage/v1/object/public/Images/Golf%20Cart%20Silhouette.png"
	defaultPrecisionImage = "https://orecrgcfrlpivjgxjnln.supabase.co/storage/v1/object/public/event-images/Vintage%20Car%20Coast%20Sunset.png"
	defaultFinalCTAImage  = "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?q=80&w=2070&auto=format&fit=crop"
	defaultResourcesImage = "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?q=80&w=2070&auto=format&fit=crop"
)

var defaultContactInfo = ContactInfo{
	Email:  "info@avantiag.com",
	Phone:  "+1 (305) 555-0123",
	Office: "Miami, FL",
}

// DefaultPages returns the built-in page tree for a language code ("es" or
// "en"). Unknown codes fall back to Spanish. The result is a fresh copy.
func DefaultPages(code string) PageContent {
	if code == "en" {
		return defaultPagesEn()
	}
	return defaultPagesEs()
}

func defaultPagesEs() PageContent {
	return PageContent{
		Home: HomePage{
			Hero: HomeHero{
				Title:       "Avanti Advisory Group",
				Subtitle:    "Impulsando su Desarrollo",
				Description: "Brindamos servicios personalizados de asesoría fiscal y contable para individuos y empresas.",
				Image:       defaultHeroImage,
				Images:      append([]string(nil), defaultHeroImages...),
			},
			Collage: defaultCollage,
			Cards:   defaultCards,
			Precision: HomePrecision{
				Title:       "La Precisión en Cada Detalle",
				Description: "En Avanti, la excelencia no es un acto, es un hábito. Cuidamos cada aspecto de tu gestión financiera y legal con meticulosidad quirúrgica.",
				Badge:       "Excelencia Técnica",
				Image:       defaultPrecisionImage,
			},
			FinalCTA: HomeFinalCTA{
				Title:           "Eleve sus estándares",
				TitleItalic:     "financieros hoy.",
				Description:     "La claridad fiscal y estratégica que su patrimonio necesita. Agende una sesión con nuestros socios directores.",
				Image:           defaultFinalCTAImage,
				Badge:           "Contacto Directo",
				ButtonPrimary:   "Iniciar Conversación",
				ButtonSecondary: "Explorar Servicios",
			},
			Branding: defaultBranding,
		},
		About: AboutPage{
			Hero: PageHero{
				Title:    "Sobre AVANTI",
				Subtitle: "Experiencia global, atención personalizada.",
			},
			Intro: AboutIntro{
				Title:   "¿Quiénes Somos?",
				Content: "Avanti significa 'adelante' en italiano, y ese es precisamente nuestro propósito.",
			},
			Cards: AboutCards{
				Title1: "Experiencia Global",
				Text1:  "Especialistas en la intersección de normativas fiscales.",
				Title2: "Alianzas Estratégicas",
				Text2:  "Red de colaboradores legales y financieros.",
			},
		},
		Resources: ResourcesPage{
			Hero: PageHero{
				Title:    "Recursos y Perspectivas",
				Subtitle: "Perspectivas expertas sobre el panorama fiscal y financiero en constante cambio.",
				Image:    defaultResourcesImage,
			},
		},
		Contact: ContactPage{
			Hero: PageHero{
				Title:    "Contáctenos",
				Subtitle: "Estamos aquí para ayudarle a navegar sus desafíos financieros.",
				Image:    defaultFinalCTAImage,
			},
			Info: defaultContactInfo,
		},
	}
}

func defaultPagesEn() PageContent {
	pages := defaultPagesEs()
	pages.Home.Hero.Subtitle = "Advancing Your Growth"
	pages.Home.Hero.Description = "We provide personalized tax and accounting advisory services for individuals and companies."
	pages.Home.Precision = HomePrecision{
		Title:       "Precision in Every Detail",
		Description: "Your vision, our dedication. Every strategy, every piece of advice, forged with the meticulousness your wealth deserves.",
		Badge:       "Technical Excellence",
		Image:       defaultPrecisionImage,
	}
	pages.Home.FinalCTA = HomeFinalCTA{
		Title:           "Elevate your financial",
		TitleItalic:     "standards today.",
		Description:     "The fiscal and strategic clarity your wealth needs. Schedule a session with our managing partners.",
		Image:           defaultFinalCTAImage,
		Badge:           "Direct Contact",
		ButtonPrimary:   "Start Conversation",
		ButtonSecondary: "Explore Services",
	}
	pages.About = AboutPage{
		Hero: PageHero{
			Title:    "About AVANTI",
			Subtitle: "Global experience, personalized attention.",
		},
		Intro: AboutIntro{
			Title:   "Who Are We?",
			Content: "Avanti means 'forward' in Italian, and that is precisely our purpose.",
		},
		Cards: AboutCards{
			Title1: "Global Experience",
			Text1:  "Specialists at the intersection of tax regulations.",
			Title2: "Strategic Alliances",
			Text2:  "Network of legal and financial collaborators.",
		},
	}
	pages.Resources = ResourcesPage{
		Hero: PageHero{
			Title:    "Resources & Insights",
			Subtitle: "Expert perspectives on the ever-changing tax and financial landscape.",
			Image:    defaultResourcesImage,
		},
	}
	pages.Contact = ContactPage{
		Hero: PageHero{
			Title:    "Contact Us",
			Subtitle: "We are here to help you navigate your financial challenges.",
			Image:    defaultFinalCTAImage,
		},
		Info: defaultContactInfo,
	}
	return pages
}

// ServiceOrder lists catalog keys in display order, shared by both languages.
func ServiceOrder() []string {
	return []string{
		"impuestos-empresas",
		"impuestos-personas",
		"herencias-fideicomisos",
		"streamlined-delinquent",
		"consultoria-fiscal",
		"impuestos-extranjeros",
		"contabilidad",
		"branding",
	}
}

// DefaultServices returns the built-in service catalog for a language code.
func DefaultServices(code string) map[string]ServiceData {
	if code == "en" {
		return defaultServicesEn()
	}
	return defaultServicesEs()
}

func defaultServicesEs() map[string]ServiceData {
	return map[string]ServiceData{
		"impuestos-empresas": {
			ID:          "impuestos-empresas",
			Title:       "Impuestos a las Empresas",
			Description: "En el entorno empresarial actual, el cumplimiento fiscal y la planificación estratégica son esenciales. Ofrecemos preparación y revisión experta de declaraciones de impuestos corporativos, asegurando precisión y optimización bajo la normativa vigente.",
			Bullets: []string{
				"Formulario 1120 (Corporaciones C)",
				"Formulario 1120-S (Corporaciones S)",
				"Formulario 1065 (Partnerships)",
				"Schedule C (Sole Proprietorships)",
				"Declaraciones Estatales y Locales",
				"Planificación fiscal corporativa",
			},
			SubSections: []SubSection{
				{
					Title:   "Formularios Internacionales y Cumplimiento Transfronterizo",
					Content: "Manejamos la complejidad de operaciones internacionales, incluyendo reporte de cuentas extranjeras, transacciones con partes relacionadas y cumplimiento de tratados fiscales.",
				},
				{
					Title:   "GILTI & FDII",
					Content: "Asesoría especializada en Global Intangible Low-Taxed Income (GILTI) y Foreign-Derived Intangible Income (FDII) para optimizar la carga tributaria global de su empresa.",
				},
			},
		},
		"impuestos-personas": {
			ID:          "impuestos-personas",
			Title:       "Impuestos para Personas Naturales",
			Description: "Brindamos asesoría personalizada para individuos con situaciones fiscales simples o complejas, tanto residentes como no residentes. Nuestro objetivo es maximizar sus deducciones legales y asegurar su tranquilidad ante el IRS.",
			Bullets: []string{
				"Declaración Formulario 1040",
				"Planificación Fiscal Personal",
				"Impuestos para Freelancers y Autónomos",
				"Declaraciones Multiestatales",
				"Planificación de Jubilación e Inversiones",
				"Reporte de Donaciones",
			},
		},
		"herencias-fideicomisos": {
			ID:          "herencias-fideicomisos",
			Title:       "Herencias, Fideicomisos y Donaciones",
			Description: "La preservación del patrimonio requiere una planificación meticulosa. Asesoramos en la estructuración fiscal de herencias, fideicomisos y donaciones para proteger sus activos y facilitar la transferencia generacional con la menor carga impositiva posible.",
			Bullets: []string{
				"Declaraciones de Fideicomisos (Form 1041)",
				"Impuestos sobre Herencias y Donaciones (Form 706 & 709)",
				"Planificación Sucesoral",
				"Estructuras de Protección Patrimonial",
			},
		},
		"streamlined-delinquent": {
			ID:          "streamlined-delinquent",
			Title:       "Formularios Internacionales Atrasados",
			Description: "Si usted tiene obligaciones fiscales pendientes con el IRS relacionadas con activos o ingresos extranjeros, le ayudamos a regularizar su situación a través de los programas oficiales de amnistía o cumplimiento voluntario.",
			Bullets: []string{
				"Streamlined Foreign Offshore Procedures",
				"Streamlined Domestic Offshore Procedures",
				"Delinquent International Information Return Submission Procedures",
				"Delinquent FBAR Submission Procedures",
			},
			SubSections: []SubSection{
				{
					Title:   "Regularización Segura",
					Content: "Analizamos su caso para determinar la vía más segura y costo-eficiente (Streamlined o Delinquent) para ponerse al día sin enfrentar penalidades criminales excesivas.",
				},
			},
		},
		"consultoria-fiscal": {
			ID:          "consultoria-fiscal",
			Title:       "Consultoría Fiscal",
			Description: "Más allá del cumplimiento anual, ofrecemos consultoría estratégica continua. Analizamos el impacto fiscal de sus decisiones de negocio, inversiones inmobiliarias y cambios de residencia antes de que ocurran.",
			Bullets: []string{
				"Análisis de Tratados Fiscales",
				"Consultoría en Inversión Inmobiliaria Extranjera (FIRPTA)",
				"Estructuración de Negocios Inbound/Outbound",
				"Residencia Fiscal y Pre-Inmigración",
			},
		},
		"impuestos-extranjeros": {
			ID:          "impuestos-extranjeros",
			Title:       "Declaración de Impuestos Extranjeros",
			Description: "Gracias a nuestras alianzas globales y certificaciones internacionales, facilitamos el cumplimiento de obligaciones fiscales en jurisdicciones fuera de Estados Unidos, asegurando una visión integral de sus impuestos mundiales.",
			Bullets: []string{
				"Coordinación con firmas locales en LatAm y Europa",
				"Reporte consolidado global",
				"Optimización de créditos fiscales extranjeros",
			},
		},
		"contabilidad": {
			ID:          "contabilidad",
			Title:       "Contabilidad y Bookkeeping",
			Description: "Servicios de contabilidad externalizada, flexibles y escalables para optimizar procesos, reducir costos y garantizar información financiera precisa. Actuamos como una extensión de tu equipo, permitiéndole enfocarse en el crecimiento de su negocio.",
			Bullets: []string{
				"Registros contables mensuales (Bookkeeping)",
				"Preparación de Estados Financieros (Balance Sheet, P&L)",
				"Conciliaciones Bancarias",
				"Contabilidad Multinacional / Multimoneda",
				"Reportes de Gestión para la Gerencia",
				"Supervisión y revisión de departamentos contables internos",
			},
		},
		"branding": {
			ID:          "branding",
			Title:       "Comunicaciones, Branding y Redes Sociales",
			Description: "Impulsamos la presencia de tu marca mediante estrategias de comunicación y gestión de redes sociales que fortalecen tu visibilidad, consolidan tu reputación y generan conexiones auténticas con su audiencia objetivo.",
			Bullets: []string{
				"Estrategia de Comunicación Corporativa",
				"Desarrollo de Identidad de Marca (Branding)",
				"Gestión y Creación de Contenido para Redes Sociales",
				"Marketing de Contenidos (Blogs, Newsletters)",
				"Gestión de Crisis de Comunicación",
				"Reportes de Métricas y ROI",
				"Capacitación de voceros y equipos internos",
			},
		},
	}
}

func defaultServicesEn() map[string]ServiceData {
	return map[string]ServiceData{
		"impuestos-empresas": {
			ID:          "impuestos-empresas",
			Title:       "Corporate Taxes",
			Description: "In today's business environment, tax compliance and strategic planning are essential. We offer expert preparation and review of corporate tax returns, ensuring accuracy and optimization under current regulations.",
			Bullets: []string{
				"Form 1120 (C-Corporations)",
				"Form 1120-S (S-Corporations)",
				"Form 1065 (Partnerships)",
				"Schedule C (Sole Proprietorships)",
				"State and Local Returns",
				"Corporate Tax Planning",
			},
			SubSections: []SubSection{
				{
					Title:   "International Forms & Cross-Border Compliance",
					Content: "We handle the complexity of international operations, including foreign account reporting, related party transactions, and tax treaty compliance.",
				},
				{
					Title:   "GILTI & FDII",
					Content: "Specialized advisory on Global Intangible Low-Taxed Income (GILTI) and Foreign-Derived Intangible Income (FDII) to optimize your global tax burden.",
				},
			},
		},
		"impuestos-personas": {
			ID:          "impuestos-personas",
			Title:       "Individual Taxes",
			Description: "We provide personalized advice for individuals with simple or complex tax situations, both residents and non-residents. Our goal is to maximize your legal deductions and ensure your peace of mind with the IRS.",
			Bullets: []string{
				"Form 1040 Declaration",
				"Personal Tax Planning",
				"Taxes for Freelancers & Self-Employed",
				"Multi-State Declarations",
				"Retirement & Investment Planning",
				"Gift Reporting",
			},
		},
		"herencias-fideicomisos": {
			ID:          "herencias-fideicomisos",
			Title:       "Estates & Trusts",
			Description: "Wealth preservation requires meticulous planning. We advise on the tax structuring of inheritances, trusts, and gifts to protect your assets and facilitate generational transfer with the lowest possible tax burden.",
			Bullets: []string{
				"Trust Returns (Form 1041)",
				"Estate & Gift Taxes (Form 706 & 709)",
				"Succession Planning",
				"Asset Protection Structures",
			},
		},
		"streamlined-delinquent": {
			ID:          "streamlined-delinquent",
			Title:       "Streamlined & Delinquent Procedures",
			Description: "If you have outstanding tax obligations with the IRS related to foreign assets or income, we help you regularize your situation through official amnesty or voluntary compliance programs.",
			Bullets: []string{
				"Streamlined Foreign Offshore Procedures",
				"Streamlined Domestic Offshore Procedures",
				"Delinquent International Information Return Submission Procedures",
				"Delinquent FBAR Submission Procedures",
			},
			SubSections: []SubSection{
				{
					Title:   "Secure Compliance",
					Content: "We analyze your case to determine the safest and most cost-efficient route (Streamlined or Delinquent) to catch up without facing excessive criminal penalties.",
				},
			},
		},
		"consultoria-fiscal": {
			ID:          "consultoria-fiscal",
			Title:       "Tax Consulting",
			Description: "Beyond annual compliance, we offer continuous strategic consulting. We analyze the tax impact of your business decisions, real estate investments, and residency changes before they happen.",
			Bullets: []string{
				"Tax Treaty Analysis",
				"Foreign Real Estate Investment Consulting (FIRPTA)",
				"Inbound/Outbound Business Structuring",
				"Tax Residency & Pre-Immigration",
			},
		},
		"impuestos-extranjeros": {
			ID:          "impuestos-extranjeros",
			Title:       "Foreign Tax Reporting",
			Description: "Thanks to our global alliances and international certifications, we facilitate compliance with tax obligations in jurisdictions outside the United States, ensuring a comprehensive view of your global taxes.",
			Bullets: []string{
				"Coordination with local firms in LatAm and Europe",
				"Global consolidated reporting",
				"Optimization of foreign tax credits",
			},
		},
		"contabilidad": {
			ID:          "contabilidad",
			Title:       "Accounting & Bookkeeping",
			Description: "Outsourced accounting services, flexible and scalable to optimize processes, reduce costs, and ensure accurate financial information. We act as an extension of your team, allowing you to focus on growing your business.",
			Bullets: []string{
				"Monthly Bookkeeping",
				"Financial Statement Preparation (Balance Sheet, P&L)",
				"Bank Reconciliations",
				"Multi-national / Multi-currency Accounting",
				"Management Reports",
				"Supervision of internal accounting departments",
			},
		},
		"branding": {
			ID:          "branding",
			Title:       "Communications & Branding",
			Description: "We boost your brand's presence through communication strategies and social media management that strengthen your visibility, consolidate your reputation, and generate authentic connections with your target audience.",
			Bullets: []string{
				"Corporate Communication Strategy",
				"Brand Identity Development",
				"Social Media Content Creation & Management",
				"Content Marketing (Blogs, Newsletters)",
				"Crisis Communication Management",
				"Metrics & ROI Reports",
				"Spokesperson Training",
			},
		},
	}
}

// DefaultPosts returns the demo articles for a language code. They exist so
// a fresh install renders a populated resources page before any editing.
func DefaultPosts(code string) []BlogPost {
	if code == "en" {
		return []BlogPost{
			{
				ID:       1,
				Title:    "Key Changes in 2024 Tax Reform",
				Excerpt:  "Understand how new legislative changes affect foreign corporations operating in the US.",
				Category: "International Tax",
				Author:   "Carlos Rossi",
				Date:     "Oct 12, 2023",
				Image:    "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?q=80&w=2070&auto=format&fit=crop",
				Content:  `<p class="mb-6">The tax landscape in the United States is constantly evolving. The recent tax reform proposal for the 2024 fiscal year introduces significant changes that directly impact corporations with foreign participation and international investors.</p>`,
			},
			{
				ID:       2,
				Title:    "What is Form 5472?",
				Excerpt:  "An essential guide for foreign-owned companies and penalties for non-compliance.",
				Category: "Compliance",
				Author:   "María Fernández",
				Date:     "Sep 28, 2023",
				Image:    "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?q=80&w=2070&auto=format&fit=crop",
				Content:  `<p class="mb-6">Form 5472 is one of the most critical and severely penalized information returns by the IRS. Its purpose is to report transactions between a U.S. corporation (or a foreign one operating in the U.S.) and its foreign owners or related parties.</p>`,
			},
			{
				ID:       3,
				Title:    "Benefits of Outsourcing Your Accounting",
				Excerpt:  "Cost reduction and greater financial accuracy: why outsourcing is the global trend.",
				Category: "Financial Management",
				Author:   "Avanti Team",
				Date:     "Sep 15, 2023",
				Image:    "https://images.unsplash.com/photo-1556761175-5973dc0f32e7?q=80&w=2070&auto=format&fit=crop",
				Content:  `<p class="mb-6">In a globalized market, agility is key. Maintaining a full internal accounting department can be costly and inefficient for many growing companies.</p>`,
			},
		}
	}
	return []BlogPost{
		{
			ID:       1,
			Title:    "Claves de la Reforma Fiscal 2024",
			Excerpt:  "Entiende cómo los nuevos cambios legislativos afectan a las corporaciones extranjeras operando en EE.UU.",
			Category: "Fiscalidad Internacional",
			Author:   "Carlos Rossi",
			Date:     "Oct 12, 2023",
			Image:    "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?q=80&w=2070&auto=format&fit=crop",
			Content: `<p class="mb-6">El panorama fiscal en Estados Unidos está en constante evolución. La reciente propuesta de reforma fiscal para el año fiscal 2024 introduce cambios significativos que impactan directamente a las corporaciones con participación extranjera y a los inversionistas internacionales.</p>
<h3 class="text-2xl font-serif text-avanti-900 mt-8 mb-4">Principales modificaciones</h3>
<p class="mb-6">Entre los puntos más destacados se encuentran ajustes en las tasas corporativas efectivas y nuevas regulaciones sobre la erosión de la base imponible. Para las empresas que operan bajo estructuras inbound (inversión extranjera en EE.UU.), esto implica una revisión exhaustiva de sus estrategias de precios de transferencia.</p>`,
		},
		{
			ID:       2,
			Title:    "¿Qué es el formulario 5472?",
			Excerpt:  "Una guía esencial para empresas de propiedad extranjera y las penalidades por incumplimiento.",
			Category: "Cumplimiento",
			Author:   "María Fernández",
			Date:     "Sep 28, 2023",
			Image:    "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?q=80&w=2070&auto=format&fit=crop",
			Content:  `<p class="mb-6">El Formulario 5472 es uno de los documentos informativos más críticos y severamente penalizados por el IRS. Su propósito es reportar transacciones entre una corporación de EE.UU. (o una extranjera operando en EE.UU.) y sus dueños extranjeros o partes relacionadas.</p>`,
		},
		{
			ID:       3,
			Title:    "Beneficios de externalizar su contabilidad",
			Excerpt:  "Reducción de costos y mayor precisión financiera: por qué el outsourcing es la tendencia global.",
			Category: "Gestión Financiera",
			Author:   "Equipo Avanti",
			Date:     "Sep 15, 2023",
			Image:    "https://images.unsplash.com/photo-1556761175-5973dc0f32e7?q=80&w=2070&auto=format&fit=crop",
			Content:  `<p class="mb-6">En un mercado globalizado, la agilidad es clave. Mantener un departamento contable interno completo puede resultar costoso e ineficiente para muchas empresas en crecimiento.</p>`,
		},
	}
}
