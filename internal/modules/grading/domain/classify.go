package domain

type Band struct {
	Min   float64
	Label string
	Color string
}

type Tier struct {
	Min     float64
	Message string
	Emoji   string
}

type Classification struct {
	Band Band
	Tier Tier
}

var bands = []Band{
	{Min: 9.5, Label: "O", Color: "#10b981"},
	{Min: 9.0, Label: "A+", Color: "#059669"},
	{Min: 8.5, Label: "A", Color: "#0d9488"},
	{Min: 7.5, Label: "B+", Color: "#0891b2"},
	{Min: 6.5, Label: "B", Color: "#0284c7"},
	{Min: 5.5, Label: "C", Color: "#dc6803"},
	{Min: 4.5, Label: "P", Color: "#dc2626"},
}

var failBand = Band{Min: 0, Label: "F", Color: "#991b1b"}

var tiers = []Tier{
	{Min: 9.5, Message: "🔥 Absolutely Outstanding! You're destined for greatness!", Emoji: "👑"},
	{Min: 9, Message: "⭐ Exceptional performance! You're built for success!", Emoji: "🏆"},
	{Min: 8.5, Message: "🌟 Excellent work! Keep shining bright!", Emoji: "✨"},
	{Min: 8, Message: "🎉 Great job! Your hard work is paying off!", Emoji: "🎊"},
	{Min: 7.5, Message: "🚀 You're doing great! Aim even higher!", Emoji: "🌈"},
	{Min: 7, Message: "💫 Good progress! You're one step away from brilliance!", Emoji: "⭐"},
	{Min: 6.5, Message: "💪 Keep pushing! Your potential is unlimited!", Emoji: "🔥"},
	{Min: 6, Message: "🌱 Stay determined! Growth is a journey!", Emoji: "💪"},
	{Min: 5, Message: "📈 Every step counts! Keep moving forward!", Emoji: "🌟"},
	{Min: 3, Message: "🌱 Growth takes time. Believe in your journey!", Emoji: "📈"},
	{Min: 1, Message: "💪 Don't give up! Every expert was once a beginner!", Emoji: "🔥"},
}

var startTier = Tier{Min: 0, Message: "🚀 Your journey starts now! Believe in yourself!", Emoji: "🌟"}

// Classify maps a CGPA to its performance band and motivation tier. Thresholds are inclusive.
func Classify(cgpa float64) Classification {
	out := Classification{Band: failBand, Tier: startTier}
	for _, band := range bands {
		if cgpa >= band.Min {
			out.Band = band
			break
		}
	}
	for _, tier := range tiers {
		if cgpa >= tier.Min {
			out.Tier = tier
			break
		}
	}
	return out
}

func Bands() []Band {
	out := make([]Band, 0, len(bands)+1)
	out = append(out, bands...)
	return append(out, failBand)
}
