package model

// Summary holds aggregate counts over a parsed record sequence.
type Summary struct {
	Total           int // total number of records
	WithLocator     int // records carrying at least one package-manager locator
	WithoutLocator  int // records whose locator field is the NA placeholder
	UniqueLicenses  int // distinct declared licenses, ignoring NA/NOASSERTION/empty
	UniqueSuppliers int // distinct suppliers, ignoring NA and empty
}

// Summarize computes a Summary over records.
func Summarize(records []ComponentRecord) Summary {
	s := Summary{Total: len(records)}

	licenses := map[string]bool{}
	suppliers := map[string]bool{}
	for _, r := range records {
		if r.PackageManagerLocator != NA {
			s.WithLocator++
		}
		if lic := r.LicenseDeclared; lic != NA && lic != "NOASSERTION" && lic != "" {
			licenses[lic] = true
		}
		if sup := r.Supplier; sup != NA && sup != "" {
			suppliers[sup] = true
		}
	}

	s.WithoutLocator = s.Total - s.WithLocator
	s.UniqueLicenses = len(licenses)
	s.UniqueSuppliers = len(suppliers)
	return s
}
