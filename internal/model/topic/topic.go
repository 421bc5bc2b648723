package topic

// Topic describes one schedule area and the persona the assistant adopts
// when answering questions about it.
type Topic struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Acronym      string   `json:"acronym"`
	Description  string   `json:"description,omitempty"`
	Objective    string   `json:"objective,omitempty"`
	SystemPrompt string   `json:"-"`
	Expertise    []string `json:"expertise,omitempty"`
	Procedures   []string `json:"procedures,omitempty"`
}

// Default is the generic persona used when a request names a topic the
// catalog does not know. An unknown topic degrades, it never fails.
func Default() Topic {
	return Topic{
		ID:           "default",
		Name:         "General Assistant",
		Acronym:      "GENERAL",
		SystemPrompt: "You are a helpful assistant.",
	}
}

// Seed provides the schedule topics served by the product catalog.
func Seed() []Topic {
	return []Topic{
		{
			ID:           "siwes",
			Name:         "Students Industrial Work Experience Scheme",
			Acronym:      "SIWES",
			Description:  "Bridges the gap between theoretical knowledge and practical experience for students in tertiary institutions.",
			Objective:    "To provide students with hands-on experience in industrial and commercial settings, enhancing their employability and bridging the skills gap between academia and industry.",
			SystemPrompt: "You are a SIWES (Student Industrial Work Experience Scheme) Schedule Master. You assist with industrial training programs, internship scheduling, and workplace learning coordination. Provide practical, industry-focused responses.",
			Expertise: []string{
				"Student placement coordination",
				"Industry partnership management",
				"Progress monitoring and evaluation",
				"Stipend administration",
				"Logbook supervision",
			},
			Procedures: []string{
				"Student registration and verification",
				"Industry placement matching",
				"Monthly stipend processing",
				"Progress report evaluation",
				"Final assessment and certification",
			},
		},
		{
			ID:           "ppit",
			Name:         "Performance and Productivity Improvement Training",
			Acronym:      "PPIT",
			Description:  "Enhances organizational performance through targeted training interventions and productivity improvement strategies.",
			Objective:    "To improve workplace productivity, enhance employee skills, and optimize organizational performance through structured training programs and strategic interventions.",
			SystemPrompt: "You are a Performance and Productivity Improvement Training Schedule Master. You help organizations close performance gaps through targeted training interventions and productivity improvement strategies. Provide practical, results-focused responses.",
			Expertise: []string{
				"Performance gap analysis",
				"Training needs identification",
				"Productivity metrics development",
				"Intervention design and implementation",
				"Impact assessment and reporting",
			},
			Procedures: []string{
				"Organizational performance assessment",
				"Training program design",
				"Implementation and delivery",
				"Progress monitoring",
				"Outcome evaluation and reporting",
			},
		},
		{
			ID:           "tna",
			Name:         "Training Needs Assessment",
			Acronym:      "TNA",
			Description:  "Systematic identification and analysis of training requirements to address skills gaps and performance deficiencies.",
			Objective:    "To systematically identify, analyze, and prioritize training needs within organizations to ensure targeted and effective capacity building interventions.",
			SystemPrompt: "You are a Training Needs Analysis Schedule Master. You assist with all processes involved in training needs analysis. Provide practical, industry-focused responses.",
			Expertise: []string{
				"Skills gap analysis",
				"Competency mapping",
				"Data collection and analysis",
				"Stakeholder consultation",
				"Training recommendations",
			},
			Procedures: []string{
				"Preliminary needs identification",
				"Data collection and surveys",
				"Analysis and gap identification",
				"Training plan development",
				"Recommendation and approval",
			},
		},
		{
			ID:           "curriculum",
			Name:         "Curriculum Development",
			Acronym:      "CURRICULUM",
			Description:  "Design and development of comprehensive training curricula aligned with industry standards and emerging technologies.",
			Objective:    "To develop relevant, industry-aligned curricula that meet current and future skill requirements while maintaining international standards and best practices.",
			SystemPrompt: "You are a Curriculum Schedule Master. You help with curriculum planning, course scheduling, and academic program development. Provide detailed, educational-focused responses.",
			Expertise: []string{
				"Curriculum design and development",
				"Industry standards alignment",
				"Learning outcome definition",
				"Assessment strategy development",
				"Content quality assurance",
			},
			Procedures: []string{
				"Industry consultation and research",
				"Curriculum framework design",
				"Content development and review",
				"Pilot testing and validation",
				"Implementation and continuous improvement",
			},
		},
		{
			ID:           "msme",
			Name:         "Micro Small and Medium Enterprise",
			Acronym:      "MSME",
			Description:  "Supports the growth and development of MSMEs through targeted training, capacity building, and business development services.",
			Objective:    "To enhance the capacity, competitiveness, and sustainability of micro, small, and medium enterprises through comprehensive training and business development support.",
			SystemPrompt: "You are a Micro Small and Medium Enterprise Schedule Master. You assist with industrial training programs, internship scheduling, and workplace learning coordination. Provide practical, industry-focused responses.",
			Expertise: []string{
				"Business development support",
				"Entrepreneurship training",
				"Financial literacy programs",
				"Market access facilitation",
				"Technology adoption guidance",
			},
			Procedures: []string{
				"MSME registration and profiling",
				"Business needs assessment",
				"Training program delivery",
				"Mentorship and coaching",
				"Progress monitoring and support",
			},
		},
		{
			ID:           "reimbursement",
			Name:         "Reimbursement",
			Acronym:      "REIMBURSEMENT",
			Description:  "Manages the reimbursement process for training expenditures and ensures compliance with ITF policies and procedures.",
			Objective:    "To ensure accurate, timely, and compliant processing of reimbursement claims while maintaining transparency and accountability in financial transactions.",
			SystemPrompt: "You are a Reimbursement Schedule Master. You assist with reimbursement claims for training expenditures, compliance checks, and disbursement procedures. Provide accurate, policy-focused responses.",
			Expertise: []string{
				"Claims processing and verification",
				"Policy compliance monitoring",
				"Financial documentation review",
				"Audit trail management",
				"Disbursement coordination",
			},
			Procedures: []string{
				"Claim submission and validation",
				"Documentation verification",
				"Approval workflow processing",
				"Payment authorization",
				"Record keeping and reporting",
			},
		},
		{
			ID:           "safety",
			Name:         "Safety",
			Acronym:      "SAFETY",
			Description:  "Promotes workplace safety culture through training, awareness programs, and safety management system implementation.",
			Objective:    "To establish and maintain a comprehensive safety culture through training, awareness, and implementation of best practice safety management systems.",
			SystemPrompt: "You are a Safety Schedule Master. You assist with workplace safety training, risk assessment, and safety management systems. Provide practical, safety-focused responses.",
			Expertise: []string{
				"Safety training program development",
				"Risk assessment and management",
				"Safety compliance monitoring",
				"Incident investigation and reporting",
				"Emergency response planning",
			},
			Procedures: []string{
				"Safety needs assessment",
				"Training program design and delivery",
				"Safety audit and inspection",
				"Incident response and investigation",
				"Continuous improvement and review",
			},
		},
		{
			ID:           "consultancy",
			Name:         "Consultancy",
			Acronym:      "CONSULTANCY",
			Description:  "Provides expert advisory services and technical assistance to organizations seeking specialized training and development solutions.",
			Objective:    "To deliver high-quality consultancy services that address specific organizational challenges and support strategic capacity building initiatives.",
			SystemPrompt: "You are a Consultancy Schedule Master. You provide expert advisory guidance on organizational training and development challenges. Provide thoughtful, strategy-focused responses.",
			Expertise: []string{
				"Expert advisory services",
				"Technical assistance provision",
				"Strategic planning support",
				"Implementation guidance",
				"Performance optimization",
			},
			Procedures: []string{
				"Client needs assessment",
				"Proposal development and approval",
				"Service delivery and implementation",
				"Progress monitoring and reporting",
				"Project closure and evaluation",
			},
		},
		{
			ID:           "tvst",
			Name:         "Technical and Vocational Skills Training",
			Acronym:      "TVST",
			Description:  "Delivers technical and vocational skills training programs to enhance workforce capabilities and employability.",
			Objective:    "To provide comprehensive technical and vocational skills training that enhances workforce capabilities and improves employment opportunities.",
			SystemPrompt: "You are a Technical and Vocational Skills Training Schedule Master. You assist with technical skills development, vocational training delivery, and certification. Provide practical, hands-on responses.",
			Expertise: []string{
				"Technical skills development",
				"Vocational training delivery",
				"Industry-specific training",
				"Practical skills assessment",
				"Certification and accreditation",
			},
			Procedures: []string{
				"Skills needs identification",
				"Training program development",
				"Practical training delivery",
				"Skills assessment and certification",
				"Graduate tracking and support",
			},
		},
		{
			ID:           "direct-training",
			Name:         "Direct Training",
			Acronym:      "DIRECT TRAINING",
			Description:  "Provides direct training interventions and capacity building programs tailored to specific organizational and individual needs.",
			Objective:    "To deliver targeted, direct training interventions that address specific skill gaps and capacity building requirements of individuals and organizations.",
			SystemPrompt: "You are a Direct Training Schedule Master. You assist with direct training interventions and customized capacity building programs. Provide targeted, needs-focused responses.",
			Expertise: []string{
				"Direct training delivery",
				"Customized program development",
				"Skills transfer and knowledge sharing",
				"Performance improvement tracking",
				"Capacity building assessment",
			},
			Procedures: []string{
				"Training needs specification",
				"Program customization and planning",
				"Direct training implementation",
				"Skills verification and assessment",
				"Impact evaluation and reporting",
			},
		},
		{
			ID:           "marketing",
			Name:         "Marketing",
			Acronym:      "MARKETING",
			Description:  "Promotes ITF services, programs, and initiatives through strategic marketing and communication activities.",
			Objective:    "To effectively promote ITF services and programs while building strong stakeholder relationships and enhancing organizational visibility and impact.",
			SystemPrompt: "You are a Marketing Schedule Master. You assist with strategic marketing, stakeholder engagement, and communication for training programs. Provide creative, outreach-focused responses.",
			Expertise: []string{
				"Strategic marketing planning",
				"Brand management and promotion",
				"Stakeholder engagement",
				"Communication strategy development",
				"Digital marketing and outreach",
			},
			Procedures: []string{
				"Marketing strategy development",
				"Campaign planning and execution",
				"Content creation and distribution",
				"Stakeholder relationship management",
				"Performance measurement and optimization",
			},
		},
	}
}
