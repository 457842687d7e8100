package twist

import "github.com/domainperm/twist/internal/psl"

// genTld holds the label fixed and offers every PSL suffix as a
// replacement candidate; the caller (dispatcher's e.suffix) skips the
// pairing equal to the input.
func genTld(_ string, add func(string)) {
	for _, suffix := range psl.All() {
		add(suffix)
	}
}
