package domain

// WizardStage is a step of the booking wizard
type WizardStage int

const (
	StageService      WizardStage = 1
	StageStylist      WizardStage = 2
	StageSchedule     WizardStage = 3
	StageConfirmation WizardStage = 4
)

// FirstStage и LastStage задают границы мастера
const (
	FirstStage = StageService
	LastStage  = StageConfirmation
)

var stageLabels = map[WizardStage]string{
	StageService:      "The Service",
	StageStylist:      "The Director",
	StageSchedule:     "The Premiere",
	StageConfirmation: "Confirmation",
}

var stageNames = map[WizardStage]string{
	StageService:      "service",
	StageStylist:      "stylist",
	StageSchedule:     "schedule",
	StageConfirmation: "confirmation",
}

// Stages returns all stages in order
func Stages() []WizardStage {
	return []WizardStage{StageService, StageStylist, StageSchedule, StageConfirmation}
}

// Label returns the title shown in the progress rail
func (s WizardStage) Label() string {
	return stageLabels[s]
}

// String returns the machine name of the stage
func (s WizardStage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if the stage is within the wizard bounds
func (s WizardStage) IsValid() bool {
	return s >= FirstStage && s <= LastStage
}
