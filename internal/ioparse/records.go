package ioparse

// Extraction shapes of the snapshot records. Each parser decodes only
// the fields it emits; everything else in a record is skipped by the
// decoder. Numeric fields that may legitimately be absent are pointers
// so absence survives into NULL columns.

// idName is the ubiquitous dehydrated reference: an identifier plus
// its display name.
type idName struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type yearCount struct {
	Year         int64  `json:"year"`
	WorksCount   *int64 `json:"works_count"`
	CitedByCount *int64 `json:"cited_by_count"`
}

type topicRecord struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	Description  string   `json:"description"`
	Keywords     []string `json:"keywords"`
	Subfield     *idName  `json:"subfield"`
	Field        *idName  `json:"field"`
	Domain       *idName  `json:"domain"`
	WorksCount   *int64   `json:"works_count"`
	CitedByCount *int64   `json:"cited_by_count"`
	UpdatedDate  string   `json:"updated_date"`
}

type conceptRecord struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Level        *int64 `json:"level"`
	Description  string `json:"description"`
	WorksCount   *int64 `json:"works_count"`
	CitedByCount *int64 `json:"cited_by_count"`
	UpdatedDate  string `json:"updated_date"`
}

type publisherRecord struct {
	ID              string   `json:"id"`
	DisplayName     string   `json:"display_name"`
	AlternateTitles []string `json:"alternate_titles"`
	CountryCodes    []string `json:"country_codes"`
	HierarchyLevel  *int64   `json:"hierarchy_level"`
	WorksCount      *int64   `json:"works_count"`
	CitedByCount    *int64   `json:"cited_by_count"`
	UpdatedDate     string   `json:"updated_date"`
}

type funderRecord struct {
	ID              string   `json:"id"`
	DisplayName     string   `json:"display_name"`
	AlternateTitles []string `json:"alternate_titles"`
	CountryCode     string   `json:"country_code"`
	Description     string   `json:"description"`
	GrantsCount     *int64   `json:"grants_count"`
	WorksCount      *int64   `json:"works_count"`
	CitedByCount    *int64   `json:"cited_by_count"`
	UpdatedDate     string   `json:"updated_date"`
}

type sourceRecord struct {
	ID                   string   `json:"id"`
	DisplayName          string   `json:"display_name"`
	ISSNL                string   `json:"issn_l"`
	ISSNs                []string `json:"issn"`
	Type                 string   `json:"type"`
	IsOA                 bool     `json:"is_oa"`
	IsInDOAJ             bool     `json:"is_in_doaj"`
	HomepageURL          string   `json:"homepage_url"`
	HostOrganization     string   `json:"host_organization"`
	HostOrganizationName string   `json:"host_organization_name"`
	WorksCount           *int64   `json:"works_count"`
	CitedByCount         *int64   `json:"cited_by_count"`
	UpdatedDate          string   `json:"updated_date"`
}

type geoRecord struct {
	City        string   `json:"city"`
	Region      string   `json:"region"`
	CountryCode string   `json:"country_code"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type institutionRecord struct {
	ID           string     `json:"id"`
	DisplayName  string     `json:"display_name"`
	ROR          string     `json:"ror"`
	CountryCode  string     `json:"country_code"`
	Type         string     `json:"type"`
	HomepageURL  string     `json:"homepage_url"`
	Geo          *geoRecord `json:"geo"`
	Lineage      []string   `json:"lineage"`
	WorksCount   *int64     `json:"works_count"`
	CitedByCount *int64     `json:"cited_by_count"`
	UpdatedDate  string     `json:"updated_date"`
}

type authorTopicRef struct {
	ID    string `json:"id"`
	Count *int64 `json:"count"`
}

type conceptScoreRef struct {
	ID    string   `json:"id"`
	Score *float64 `json:"score"`
}

type affiliationRecord struct {
	Institution *idName `json:"institution"`
	Years       []int64 `json:"years"`
}

type authorRecord struct {
	ID           string              `json:"id"`
	DisplayName  string              `json:"display_name"`
	ORCID        string              `json:"orcid"`
	Topics       []authorTopicRef    `json:"topics"`
	XConcepts    []conceptScoreRef   `json:"x_concepts"`
	Affiliations []affiliationRecord `json:"affiliations"`
	CountsByYear []yearCount         `json:"counts_by_year"`
	WorksCount   *int64              `json:"works_count"`
	CitedByCount *int64              `json:"cited_by_count"`
	UpdatedDate  string              `json:"updated_date"`
}

type authorRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type authorshipInstitutionRef struct {
	ID          string `json:"id"`
	CountryCode string `json:"country_code"`
}

type authorshipRecord struct {
	AuthorPosition  string                     `json:"author_position"`
	Author          *authorRef                 `json:"author"`
	IsCorresponding bool                       `json:"is_corresponding"`
	RawAuthorName   string                     `json:"raw_author_name"`
	Institutions    []authorshipInstitutionRef `json:"institutions"`
	Countries       []string                   `json:"countries"`
}

type topicScoreRef struct {
	ID    string   `json:"id"`
	Score *float64 `json:"score"`
}

type sourceRef struct {
	ID string `json:"id"`
}

type locationRecord struct {
	Source         *sourceRef `json:"source"`
	IsOA           bool       `json:"is_oa"`
	Version        string     `json:"version"`
	License        string     `json:"license"`
	LandingPageURL string     `json:"landing_page_url"`
	PDFURL         string     `json:"pdf_url"`
}

type keywordRecord struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Score       *float64 `json:"score"`
}

type grantRecord struct {
	Funder            string `json:"funder"`
	FunderDisplayName string `json:"funder_display_name"`
	AwardID           string `json:"award_id"`
}

type workRecord struct {
	ID              string             `json:"id"`
	DOI             string             `json:"doi"`
	Title           string             `json:"title"`
	PublicationYear *int64             `json:"publication_year"`
	PublicationDate string             `json:"publication_date"`
	Type            string             `json:"type"`
	Language        string             `json:"language"`
	IsRetracted     bool               `json:"is_retracted"`
	IsParatext      bool               `json:"is_paratext"`
	CitedByCount    *int64             `json:"cited_by_count"`
	UpdatedDate     string             `json:"updated_date"`
	Authorships     []authorshipRecord `json:"authorships"`
	Topics          []topicScoreRef    `json:"topics"`
	Concepts        []conceptScoreRef  `json:"concepts"`
	PrimaryLocation *locationRecord    `json:"primary_location"`
	Locations       []locationRecord   `json:"locations"`
	Keywords        []keywordRecord    `json:"keywords"`
	Grants          []grantRecord      `json:"grants"`
	CountsByYear    []yearCount        `json:"counts_by_year"`
	ReferencedWorks []string           `json:"referenced_works"`
	RelatedWorks    []string           `json:"related_works"`
}
