package pipeline

type stageSeed struct {
	name              string
	probabilityWeight int
	color             string
}

// defaultStages mirrors how the org runs each of its six boards. Position is
// the slice index plus one.
var defaultStages = map[PipelineType][]stageSeed{
	TypeBD: {
		{"Lead", 10, "#8D6E63"},
		{"Discovery", 40, "#8D6E63"},
		{"Proposal", 60, "#8D6E63"},
		{"Negotiation", 80, "#8D6E63"},
		{"Contracting", 90, "#8D6E63"},
		{"Won", 100, "#4A7C59"},
		{"Lost", 0, "#8B4049"},
	},
	TypeVentures: {
		{"Idea Dump", 5, "#D4A5A5"},
		{"Concept", 20, "#D4A5A5"},
		{"Discovery", 40, "#D4A5A5"},
		{"MVP Build", 60, "#D4A5A5"},
		{"Pilot", 80, "#D4A5A5"},
		{"Live", 90, "#4A7C59"},
		{"Scaling", 100, "#4A7C59"},
	},
	TypeStudio: {
		{"Inquiry", 20, "#4A7C59"},
		{"Scoping", 40, "#4A7C59"},
		{"In Progress", 70, "#4A7C59"},
		{"Review", 85, "#4A7C59"},
		{"Delivered", 100, "#4A7C59"},
	},
	TypeClients: {
		{"Onboarding", 30, "#5C7A99"},
		{"Active", 100, "#4A7C59"},
		{"At Risk", 50, "#C9A227"},
		{"Churned", 0, "#8B4049"},
	},
	TypeFinance: {
		{"Pending", 30, "#D97B3A"},
		{"Approved", 70, "#D97B3A"},
		{"Paid", 100, "#4A7C59"},
	},
	TypeAdmin: {
		{"To Do", 0, "#7B68A6"},
		{"In Progress", 50, "#7B68A6"},
		{"Done", 100, "#4A7C59"},
	},
}
