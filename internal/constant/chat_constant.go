package constant

const (
	// OffTopicRedirect is returned verbatim for off-topic queries. No LLM
	// call happens on this path.
	OffTopicRedirect = `I'm here to help with vaporizer hardware, accessories, and orders from ineedhemp.com. I can't help with that topic, but I'd be happy to answer questions about our products, troubleshoot your device, or help you pick the right atomizer. What would you like to know?`

	// RecoveryApology is returned when the request pipeline panics. The
	// handler reports it with status "error".
	RecoveryApology = `I'm sorry, something went wrong on my end while handling that. Please try again.`

	// CustomerServicePolicy is prepended as grounding for customer-service
	// intents so the model answers from store policy instead of guessing.
	CustomerServicePolicy = `Store policies for ineedhemp.com:
- Returns: unused items within 30 days of delivery, original packaging required.
- Warranty: 90 days on heaters and atomizers against manufacturing defects.
- Shipping: orders ship within 2 business days; tracking is emailed at dispatch.
- Order changes: cancellations and address changes are possible until the order ships.
- Damaged arrivals: photos of the damage within 7 days get a replacement or refund.
For anything these policies do not cover, direct the customer to the store's contact form.`
)
