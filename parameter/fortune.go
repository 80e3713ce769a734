package parameter

// DefaultFortunes is the built-in pool used when no fortunes are configured
var DefaultFortunes = []string{
	"Great things are coming your way!",
	"You will have a wonderful day!",
	"Someone is thinking of you right now.",
	"A pleasant surprise is waiting for you.",
	"Your hard work will pay off soon.",
	"Adventure awaits you around the corner.",
	"You will make a new friend this week.",
	"Good luck will follow you everywhere.",
}

// FortuneRevealedName is the bus event name and the wire "type" of a revealed fortune
const FortuneRevealedName = "fortuneRevealed"
