package enum

// ProviderStatus tracks how an e-invoice was issued. Only local issuance
// exists today; remote provider statuses get their own values later.
type ProviderStatus string

const (
	ProviderStatusLocalIssued ProviderStatus = "LOCAL_ISSUED"
)

func (s ProviderStatus) String() string {
	return string(s)
}
