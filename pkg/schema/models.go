// Package schema provides database row models for the OpenAlex target
// tables. Field order of a model is the column order the engine writes;
// the ddl tag declares the liberal column type used during bulk load.
// The load-time schema carries no constraints beyond NOT NULL on the
// primary identifiers of main tables; keys and indexes are applied by an
// external step after the load.
package schema

// Topic is a research topic, the finest level of the subject hierarchy.
type Topic struct {
	ID           string `db:"id" ddl:"VARCHAR(32) NOT NULL"`
	DisplayName  string `db:"display_name" ddl:"VARCHAR(500)"`
	Description  string `db:"description" ddl:"TEXT"`
	Keywords     string `db:"keywords" ddl:"TEXT"`
	WorksCount   int64  `db:"works_count" ddl:"BIGINT"`
	CitedByCount int64  `db:"cited_by_count" ddl:"BIGINT"`
	UpdatedDate  string `db:"updated_date" ddl:"VARCHAR(32)"`
}

func (Topic) TableName() string { return "topics" }

// TopicHierarchy links a topic to its subfield, field and domain.
type TopicHierarchy struct {
	TopicID      string `db:"topic_id" ddl:"VARCHAR(32) NOT NULL"`
	SubfieldID   string `db:"subfield_id" ddl:"VARCHAR(64)"`
	SubfieldName string `db:"subfield_name" ddl:"VARCHAR(500)"`
	FieldID      string `db:"field_id" ddl:"VARCHAR(64)"`
	FieldName    string `db:"field_name" ddl:"VARCHAR(500)"`
	DomainID     string `db:"domain_id" ddl:"VARCHAR(64)"`
	DomainName   string `db:"domain_name" ddl:"VARCHAR(500)"`
}

func (TopicHierarchy) TableName() string { return "topic_hierarchy" }

// Concept is a legacy subject tag; kept because the snapshot still
// carries concept assignments on works and authors.
type Concept struct {
	ID           string `db:"id" ddl:"VARCHAR(32) NOT NULL"`
	DisplayName  string `db:"display_name" ddl:"VARCHAR(500)"`
	Level        int64  `db:"level" ddl:"BIGINT"`
	Description  string `db:"description" ddl:"TEXT"`
	WorksCount   int64  `db:"works_count" ddl:"BIGINT"`
	CitedByCount int64  `db:"cited_by_count" ddl:"BIGINT"`
	UpdatedDate  string `db:"updated_date" ddl:"VARCHAR(32)"`
}

func (Concept) TableName() string { return "concepts" }

// Publisher is a publishing organization.
type Publisher struct {
	ID              string `db:"id" ddl:"VARCHAR(32) NOT NULL"`
	DisplayName     string `db:"display_name" ddl:"VARCHAR(500)"`
	AlternateTitles string `db:"alternate_titles" ddl:"TEXT"`
	CountryCodes    string `db:"country_codes" ddl:"VARCHAR(200)"`
	HierarchyLevel  int64  `db:"hierarchy_level" ddl:"BIGINT"`
	WorksCount      int64  `db:"works_count" ddl:"BIGINT"`
	CitedByCount    int64  `db:"cited_by_count" ddl:"BIGINT"`
	UpdatedDate     string `db:"updated_date" ddl:"VARCHAR(32)"`
}

func (Publisher) TableName() string { return "publishers" }

// Funder is a research funding organization.
type Funder struct {
	ID              string `db:"id" ddl:"VARCHAR(32) NOT NULL"`
	DisplayName     string `db:"display_name" ddl:"VARCHAR(500)"`
	AlternateTitles string `db:"alternate_titles" ddl:"TEXT"`
	CountryCode     string `db:"country_code" ddl:"VARCHAR(2)"`
	Description     string `db:"description" ddl:"TEXT"`
	GrantsCount     int64  `db:"grants_count" ddl:"BIGINT"`
	WorksCount      int64  `db:"works_count" ddl:"BIGINT"`
	CitedByCount    int64  `db:"cited_by_count" ddl:"BIGINT"`
	UpdatedDate     string `db:"updated_date" ddl:"VARCHAR(32)"`
}

func (Funder) TableName() string { return "funders" }

// Source is a venue works are hosted in: a journal, repository or
// conference.
type Source struct {
	ID           string `db:"id" ddl:"VARCHAR(32) NOT NULL"`
	DisplayName  string `db:"display_name" ddl:"VARCHAR(500)"`
	ISSNL        string `db:"issn_l" ddl:"VARCHAR(16)"`
	ISSNs        string `db:"issns" ddl:"VARCHAR(200)"`
	Type         string `db:"type" ddl:"VARCHAR(32)"`
	IsOA         bool   `db:"is_oa" ddl:"BOOLEAN"`
	IsInDOAJ     bool   `db:"is_in_doaj" ddl:"BOOLEAN"`
	HomepageURL  string `db:"homepage_url" ddl:"TEXT"`
	WorksCount   int64  `db:"works_count" ddl:"BIGINT"`
	CitedByCount int64  `db:"cited_by_count" ddl:"BIGINT"`
	UpdatedDate  string `db:"updated_date" ddl:"VARCHAR(32)"`
}

func (Source) TableName() string { return "sources" }

// SourcePublisher links a source to its host publisher.
type SourcePublisher struct {
	SourceID      string `db:"source_id" ddl:"VARCHAR(32) NOT NULL"`
	PublisherID   string `db:"publisher_id" ddl:"VARCHAR(32)"`
	PublisherName string `db:"publisher_name" ddl:"VARCHAR(500)"`
}

func (SourcePublisher) TableName() string { return "source_publishers" }

// Institution is a research organization authors are affiliated with.
type Institution struct {
	ID           string `db:"id" ddl:"VARCHAR(32) NOT NULL"`
	DisplayName  string `db:"display_name" ddl:"VARCHAR(500)"`
	ROR          string `db:"ror" ddl:"VARCHAR(64)"`
	CountryCode  string `db:"country_code" ddl:"VARCHAR(2)"`
	Type         string `db:"type" ddl:"VARCHAR(32)"`
	HomepageURL  string `db:"homepage_url" ddl:"TEXT"`
	WorksCount   int64  `db:"works_count" ddl:"BIGINT"`
	CitedByCount int64  `db:"cited_by_count" ddl:"BIGINT"`
	UpdatedDate  string `db:"updated_date" ddl:"VARCHAR(32)"`
}

func (Institution) TableName() string { return "institutions" }

// InstitutionGeo holds the geography of an institution.
type InstitutionGeo struct {
	InstitutionID string  `db:"institution_id" ddl:"VARCHAR(32) NOT NULL"`
	City          string  `db:"city" ddl:"VARCHAR(200)"`
	Region        string  `db:"region" ddl:"VARCHAR(200)"`
	CountryCode   string  `db:"country_code" ddl:"VARCHAR(2)"`
	Country       string  `db:"country" ddl:"VARCHAR(200)"`
	Latitude      float64 `db:"latitude" ddl:"REAL"`
	Longitude     float64 `db:"longitude" ddl:"REAL"`
}

func (InstitutionGeo) TableName() string { return "institution_geo" }

// InstitutionHierarchy is one lineage edge from an institution to an
// ancestor institution. The institution itself is excluded.
type InstitutionHierarchy struct {
	InstitutionID string `db:"institution_id" ddl:"VARCHAR(32) NOT NULL"`
	AncestorID    string `db:"ancestor_id" ddl:"VARCHAR(32)"`
}

func (InstitutionHierarchy) TableName() string { return "institution_hierarchy" }

// Author is a main author record from the authors snapshot. The
// authors parser is optional; the canonical author extraction during a
// works load goes to author_names instead.
type Author struct {
	ID           string `db:"id" ddl:"VARCHAR(32) NOT NULL"`
	DisplayName  string `db:"display_name" ddl:"VARCHAR(500)"`
	ORCID        string `db:"orcid" ddl:"VARCHAR(64)"`
	WorksCount   int64  `db:"works_count" ddl:"BIGINT"`
	CitedByCount int64  `db:"cited_by_count" ddl:"BIGINT"`
	UpdatedDate  string `db:"updated_date" ddl:"VARCHAR(32)"`
}

func (Author) TableName() string { return "authors" }

// AuthorTopic links an author to a topic they publish in.
type AuthorTopic struct {
	AuthorID    string `db:"author_id" ddl:"VARCHAR(32) NOT NULL"`
	TopicID     string `db:"topic_id" ddl:"VARCHAR(32)"`
	Occurrences int64  `db:"occurrences" ddl:"BIGINT"`
}

func (AuthorTopic) TableName() string { return "author_topics" }

// AuthorConcept links an author to a legacy concept with its score.
type AuthorConcept struct {
	AuthorID  string  `db:"author_id" ddl:"VARCHAR(32) NOT NULL"`
	ConceptID string  `db:"concept_id" ddl:"VARCHAR(32)"`
	Score     float64 `db:"score" ddl:"REAL"`
}

func (AuthorConcept) TableName() string { return "author_concepts" }

// AuthorInstitution is one affiliation of an author. Years is the
// affiliation years joined with "|".
type AuthorInstitution struct {
	AuthorID      string `db:"author_id" ddl:"VARCHAR(32) NOT NULL"`
	InstitutionID string `db:"institution_id" ddl:"VARCHAR(32)"`
	Years         string `db:"years" ddl:"VARCHAR(500)"`
}

func (AuthorInstitution) TableName() string { return "author_institutions" }

// AuthorWorksByYear is a yearly output/citation count of an author.
type AuthorWorksByYear struct {
	AuthorID     string `db:"author_id" ddl:"VARCHAR(32) NOT NULL"`
	Year         int64  `db:"year" ddl:"BIGINT"`
	WorksCount   int64  `db:"works_count" ddl:"BIGINT"`
	CitedByCount int64  `db:"cited_by_count" ddl:"BIGINT"`
}

func (AuthorWorksByYear) TableName() string { return "authors_works_by_year" }

// Work is a main work record: a paper, book, dataset or other
// scholarly output. Works are the bulk of the snapshot volume.
type Work struct {
	ID              string `db:"id" ddl:"VARCHAR(32) NOT NULL"`
	DOI             string `db:"doi" ddl:"VARCHAR(500)"`
	Title           string `db:"title" ddl:"VARCHAR(3000)"`
	PublicationYear int64  `db:"publication_year" ddl:"BIGINT"`
	PublicationDate string `db:"publication_date" ddl:"VARCHAR(32)"`
	Type            string `db:"type" ddl:"VARCHAR(64)"`
	Language        string `db:"language" ddl:"VARCHAR(16)"`
	IsRetracted     bool   `db:"is_retracted" ddl:"BOOLEAN"`
	IsParatext      bool   `db:"is_paratext" ddl:"BOOLEAN"`
	CitedByCount    int64  `db:"cited_by_count" ddl:"BIGINT"`
	UpdatedDate     string `db:"updated_date" ddl:"VARCHAR(32)"`
}

func (Work) TableName() string { return "works" }

// Authorship is one author position in the byline of a work.
type Authorship struct {
	WorkID          string `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	AuthorID        string `db:"author_id" ddl:"VARCHAR(32)"`
	AuthorPosition  string `db:"author_position" ddl:"VARCHAR(16)"`
	IsCorresponding bool   `db:"is_corresponding" ddl:"BOOLEAN"`
	RawAuthorName   string `db:"raw_author_name" ddl:"VARCHAR(500)"`
}

func (Authorship) TableName() string { return "authorship" }

// AuthorshipInstitution is one institution attached to one authorship.
// CountryCode is a denormalised convenience duplicated from the nested
// institution record; authorship_countries remains the canonical list.
type AuthorshipInstitution struct {
	WorkID        string `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	AuthorID      string `db:"author_id" ddl:"VARCHAR(32)"`
	InstitutionID string `db:"institution_id" ddl:"VARCHAR(32)"`
	CountryCode   string `db:"country_code" ddl:"VARCHAR(10)"`
}

func (AuthorshipInstitution) TableName() string { return "authorship_institutions" }

// AuthorshipCountry is one country attached to one authorship.
type AuthorshipCountry struct {
	WorkID      string `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	AuthorID    string `db:"author_id" ddl:"VARCHAR(32)"`
	CountryCode string `db:"country_code" ddl:"VARCHAR(10)"`
}

func (AuthorshipCountry) TableName() string { return "authorship_countries" }

// AuthorName is the canonical author extraction from a works load: the
// display name as OpenAlex canonicalised it, split into forename and
// surname at extraction time. A failed split leaves both parts NULL.
type AuthorName struct {
	WorkID      string `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	AuthorID    string `db:"author_id" ddl:"VARCHAR(32)"`
	DisplayName string `db:"display_name" ddl:"VARCHAR(500)"`
	Forename    string `db:"forename" ddl:"VARCHAR(300)"`
	Surname     string `db:"surname" ddl:"VARCHAR(300)"`
}

func (AuthorName) TableName() string { return "author_names" }

// WorkTopic links a work to a topic with its assignment score.
type WorkTopic struct {
	WorkID  string  `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	TopicID string  `db:"topic_id" ddl:"VARCHAR(32)"`
	Score   float64 `db:"score" ddl:"REAL"`
}

func (WorkTopic) TableName() string { return "work_topics" }

// WorkConcept links a work to a legacy concept with its score.
type WorkConcept struct {
	WorkID    string  `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	ConceptID string  `db:"concept_id" ddl:"VARCHAR(32)"`
	Score     float64 `db:"score" ddl:"REAL"`
}

func (WorkConcept) TableName() string { return "work_concepts" }

// WorkSource links a work to a hosting source. One row per distinct
// source over all locations of the work.
type WorkSource struct {
	WorkID   string `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	SourceID string `db:"source_id" ddl:"VARCHAR(32)"`
}

func (WorkSource) TableName() string { return "work_sources" }

// WorkLocation is one hosting location of a work.
type WorkLocation struct {
	WorkID         string `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	SourceID       string `db:"source_id" ddl:"VARCHAR(32)"`
	Version        string `db:"version" ddl:"VARCHAR(64)"`
	License        string `db:"license" ddl:"VARCHAR(64)"`
	IsOA           bool   `db:"is_oa" ddl:"BOOLEAN"`
	IsPrimary      bool   `db:"is_primary" ddl:"BOOLEAN"`
	LandingPageURL string `db:"landing_page_url" ddl:"TEXT"`
	PDFURL         string `db:"pdf_url" ddl:"TEXT"`
}

func (WorkLocation) TableName() string { return "work_locations" }

// WorkKeyword links a work to a keyword with its score.
type WorkKeyword struct {
	WorkID      string  `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	KeywordID   string  `db:"keyword_id" ddl:"VARCHAR(200)"`
	DisplayName string  `db:"display_name" ddl:"VARCHAR(500)"`
	Score       float64 `db:"score" ddl:"REAL"`
}

func (WorkKeyword) TableName() string { return "work_keywords" }

// WorkFunder links a work to a funder and the award identifier.
type WorkFunder struct {
	WorkID   string `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	FunderID string `db:"funder_id" ddl:"VARCHAR(32)"`
	AwardID  string `db:"award_id" ddl:"VARCHAR(500)"`
}

func (WorkFunder) TableName() string { return "work_funders" }

// CitationByYear is a yearly citation count of a work.
type CitationByYear struct {
	WorkID       string `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	Year         int64  `db:"year" ddl:"BIGINT"`
	CitedByCount int64  `db:"cited_by_count" ddl:"BIGINT"`
}

func (CitationByYear) TableName() string { return "citations_by_year" }

// ReferencedWork is an outgoing reference edge between works.
type ReferencedWork struct {
	WorkID           string `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	ReferencedWorkID string `db:"referenced_work_id" ddl:"VARCHAR(32)"`
}

func (ReferencedWork) TableName() string { return "referenced_works" }

// RelatedWork is a relatedness edge between works.
type RelatedWork struct {
	WorkID        string `db:"work_id" ddl:"VARCHAR(32) NOT NULL"`
	RelatedWorkID string `db:"related_work_id" ddl:"VARCHAR(32)"`
}

func (RelatedWork) TableName() string { return "related_works" }
