package chat

// Greeting opens every transcript.
const Greeting = "Hi! I'm Aurelia 💗 Ask me anything about skincare products or routines."

// FallbackReply answers any message that is not a quick topic.
const FallbackReply = "Great question! For best results, follow a gentle routine: cleanse, treat, moisturize, and always use sunscreen daily. Consistency is the key to glowing skin! 💗"

var topics = []string{
	"What is the best vitamin C serum?",
	"How do I reduce acne?",
	"Explain retinol benefits",
	"Budget friendly moisturizers?",
}

var replies = map[string]string{
	"What is the best vitamin C serum?": "A great Vitamin C serum should have 10-20% L-ascorbic acid with Vitamin E & Ferulic Acid for stability. Look for dark packaging to prevent oxidation. Apply in the morning before sunscreen for best results! 🍊✨",
	"How do I reduce acne?":             "For acne, use a gentle salicylic acid cleanser, niacinamide serum to control oil, and a lightweight moisturizer. Avoid touching your face and change pillowcases regularly. Consistency is key! 💪",
	"Explain retinol benefits":          "Retinol (Vitamin A) is an anti-aging superstar! It boosts collagen, reduces fine lines, fades dark spots, and smooths texture. Start with 0.25% concentration and use at night. Always pair with sunscreen! 🌙",
	"Budget friendly moisturizers?":     "Great budget moisturizers: Cetaphil Moisturizing Cream (~₹300), Neutrogena Hydro Boost (~₹400), and Minimalist Sepicalm Moisturizer (~₹350). All are effective and gentle! 💧",
}

// Topics returns the quick topics in display order.
func Topics() []string {
	return append([]string(nil), topics...)
}

// Reply looks text up verbatim and reports whether it matched a quick topic.
func Reply(text string) (string, bool) {
	if r, ok := replies[text]; ok {
		return r, true
	}
	return FallbackReply, false
}
