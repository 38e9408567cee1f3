package sel

const (
	Logo = ".brand-logo"

	SimulateFormAbilityA = "#simulate-form-ability-a"
	SimulateFormAbilityB = "#simulate-form-ability-b"
	SimulateFormMatches  = "#simulate-form-simulations"
	SimulateFormBestOf   = "#simulate-form-best-of"
	SimulateFormSubmit   = "#simulate-form-submit"
	SimulateFormError    = ".error"

	ReportRateA = "#report-rate-a"
	ReportRateB = "#report-rate-b"
)
