package goal

type DistributionStrategy string

const (
	StrategyLinear     DistributionStrategy = "linear"
	StrategyCustom     DistributionStrategy = "custom"
	StrategyHistorical DistributionStrategy = "historical"
	StrategyMilestone  DistributionStrategy = "milestone"
)

var AllStrategies = []DistributionStrategy{
	StrategyLinear,
	StrategyCustom,
	StrategyHistorical,
	StrategyMilestone,
}

func (s DistributionStrategy) IsValid() bool {
	for _, v := range AllStrategies {
		if s == v {
			return true
		}
	}
	return false
}

// Status is the three-valued health of a goal: on track, needs attention, or
// needs intervention.
type Status string

const (
	StatusOK    Status = "ok"
	StatusCheck Status = "check"
	StatusSave  Status = "save"
)
