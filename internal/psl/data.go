package psl

// suffixes is a baked-in snapshot of the ICANN section of the Public Suffix
// List (https://publicsuffix.org/list/public_suffix_list.dat), excluding
// everything below the "===BEGIN/END PRIVATE DOMAINS===" marker. The real
// list carries several thousand entries generated by a daily refresh job
// that runs outside this repository (spec §1, §6); this is a representative
// subset covering the common single-label gTLDs plus the multi-label ccTLD
// suffixes exercised by the parser and its tests (co.uk, ac.uk, gov.co,
// edu.au, ...).
var suffixes = []string{
	// generic top-level domains
	"com", "net", "org", "info", "biz", "io", "co", "dev", "app", "ai",
	"tv", "me", "cc", "xyz", "online", "site", "tech", "shop", "store",
	"cloud", "digital", "email", "live", "news", "studio", "systems",
	"world", "zone", "run", "page", "link", "click", "download", "name",
	"pro", "gov", "edu", "mil", "int",

	// country-code TLDs (single label)
	"us", "uk", "de", "fr", "jp", "cn", "in", "br", "ru", "au", "ca",
	"es", "it", "nl", "se", "no", "fi", "dk", "pl", "ch", "at", "be",
	"nz", "za", "mx", "kr", "id", "tr", "sa", "ie", "pt", "gr", "cz",
	"hu", "ro", "sg", "hk", "tw", "th", "vn", "ph", "my", "ar", "cl",

	// multi-label public suffixes (ICANN section)
	"co.uk", "org.uk", "me.uk", "ltd.uk", "plc.uk", "net.uk", "sch.uk",
	"ac.uk", "gov.uk", "nhs.uk", "police.uk",
	"com.au", "net.au", "org.au", "edu.au", "gov.au", "asn.au", "id.au",
	"co.nz", "net.nz", "org.nz", "govt.nz", "ac.nz", "school.nz",
	"co.jp", "or.jp", "ne.jp", "ac.jp", "ad.jp", "ed.jp", "go.jp",
	"com.cn", "net.cn", "org.cn", "gov.cn", "edu.cn",
	"com.br", "net.br", "org.br", "gov.br", "edu.br",
	"co.in", "net.in", "org.in", "gov.in", "ac.in", "res.in",
	"com.mx", "net.mx", "org.mx", "gob.mx", "edu.mx",
	"com.ar", "net.ar", "org.ar", "gob.ar", "edu.ar",
	"co.za", "net.za", "org.za", "gov.za", "ac.za", "web.za",
	"com.sg", "net.sg", "org.sg", "gov.sg", "edu.sg",
	"com.hk", "net.hk", "org.hk", "gov.hk", "edu.hk",
	"co.kr", "ne.kr", "or.kr", "go.kr", "ac.kr",
	"gov.co", "com.co", "net.co", "org.co", "edu.co", "mil.co",
	"com.tr", "net.tr", "org.tr", "gov.tr", "edu.tr",
	"com.my", "net.my", "org.my", "gov.my", "edu.my",
	"com.ph", "net.ph", "org.ph", "gov.ph", "edu.ph",
	"com.vn", "net.vn", "org.vn", "gov.vn", "edu.vn",
	"co.id", "net.id", "or.id", "go.id", "ac.id", "web.id",
}
