package types

// Error categories. Validation findings are accumulated under these names.
const (
	CategoryDuplicateUIDs    = "Duplicate UIDs"
	CategoryBrokenReferences = "Broken References"
	CategoryDataFormats      = "Data Formats"
	CategoryCalendarLogic    = "Calendar Logic"
)

// Repair categories. Corrective actions are accumulated under these names.
const (
	CategorySummaryTaskDependencies = "Summary Task Dependencies"
	CategoryCircularDependencies    = "Circular Dependencies"
	CategoryDateConstraints         = "Date Constraints"
	CategoryProjectMetadata         = "Project Metadata"
	CategoryTaskFields              = "Task Fields"
	CategoryIncorrectMilestones     = "Incorrect Milestones"
	CategoryZeroWorkTasks           = "Zero Work Tasks"
	CategoryFinishDateCalculation   = "Finish Date Calculation"
)
