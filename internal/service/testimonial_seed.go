package service

// sampleTestimonials returns the fixed presentation-only records the public
// display surface falls back to before any real testimonial is persisted.
// They are never written to the substrate.
func sampleTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:       1,
			Name:     "Sarah Johnson",
			Company:  "TechStart Inc.",
			Role:     "CEO",
			Content:  "INARA TECH transformed our digital presence completely. Their innovative approach and attention to detail exceeded our expectations. The team delivered exceptional results that significantly boosted our online engagement.",
			Rating:   5,
			Avatar:   "👩‍💼",
			Featured: true,
		},
		{
			ID:       2,
			Name:     "Michael Chen",
			Company:  "Digital Solutions Ltd.",
			Role:     "Marketing Director",
			Content:  "Working with INARA TECH was a game-changer for our business. Their creative solutions and technical expertise helped us achieve remarkable growth. Highly recommended for anyone looking for quality digital services.",
			Rating:   5,
			Avatar:   "👨‍💻",
			Featured: true,
		},
		{
			ID:       3,
			Name:     "Emily Rodriguez",
			Company:  "Creative Agency",
			Role:     "Founder",
			Content:  "The level of professionalism and creativity at INARA TECH is outstanding. They understood our vision perfectly and brought it to life with amazing results. Our website traffic increased by 300% after their redesign.",
			Rating:   5,
			Avatar:   "👩‍🎨",
			Featured: true,
		},
		{
			ID:       4,
			Name:     "David Kumar",
			Company:  "E-commerce Plus",
			Role:     "Operations Manager",
			Content:  "INARA TECH's mobile app development service was exceptional. The app they created for us has significantly improved our customer engagement and sales. Their support and maintenance services are also top-notch.",
			Rating:   5,
			Avatar:   "👨‍💼",
			Featured: false,
		},
		{
			ID:       5,
			Name:     "Lisa Thompson",
			Company:  "HealthTech Solutions",
			Role:     "CTO",
			Content:  "The cloud-native architecture solution provided by INARA TECH was exactly what we needed. Their expertise in modern technologies helped us scale efficiently. The team is knowledgeable and responsive.",
			Rating:   5,
			Avatar:   "👩‍⚕️",
			Featured: false,
		},
		{
			ID:       6,
			Name:     "Alex Patel",
			Company:  "StartupHub",
			Role:     "Co-founder",
			Content:  "INARA TECH helped us build a robust digital infrastructure from scratch. Their consulting services were invaluable in making the right technology choices. We couldn't have done it without them.",
			Rating:   5,
			Avatar:   "👨‍🚀",
			Featured: false,
		},
	}
}
