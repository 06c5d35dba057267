package model

import (
	"time"

	"github.com/lib/pq"
)

const (
	TableMissionary = "ncm_m10001"
	TableContact    = "ncm_m10002"
	TableConsent    = "ncm_m10003"
	TableSpouse     = "ncm_m10101"
	TableFile       = "ncm_file_uploads"

	EntityMissionary = "missionary"
	EntitySpouse     = "missionary_spouse"
	EntityContact    = "missionary_contact"
	EntityConsent    = "missionary_consent"
	EntityFile       = "missionary_file"

	FieldID           = "id"
	FieldMissionaryID = "missionary_id"
	FieldKoreanName   = "korean_name"
	FieldCreatedAt    = "created_at"
	FieldFileType     = "file_type"

	// MaritalSingle exempts a registration from spouse details.
	MaritalSingle = "미혼"
)

// Missionary is the basic record in ncm_m10001. ID is the serial key every
// other ncm_* table refers to; MissionaryID is the code entered by staff.
type Missionary struct {
	ID                  int       `db:"id"`
	MissionaryID        string    `db:"missionary_id"`
	KoreanName          string    `db:"korean_name"`
	EnglishName         string    `db:"english_name"`
	MissionName         string    `db:"mission_name"`
	Gender              string    `db:"gender"`
	MaritalStatus       string    `db:"marital_status"`
	ResidentNumber1     string    `db:"resident_number1"`
	ResidentNumber2     string    `db:"resident_number2"`
	BirthDate           string    `db:"birth_date"`
	PassportNumber      string    `db:"passport_number"`
	AdmissionDate       string    `db:"admission_date"`
	DispatchDate        string    `db:"dispatch_date"`
	EndDate             *string   `db:"end_date"`
	TrainingInstitution string    `db:"training_institution"`
	TrainingBatch       string    `db:"training_batch"`
	TrainingStartDate   string    `db:"training_start_date"`
	TrainingEndDate     string    `db:"training_end_date"`
	Address             string    `db:"address"`
	CreatedAt           time.Time `db:"created_at"`
}

func (m Missionary) Single() bool {
	return m.MaritalStatus == MaritalSingle
}

type Spouse struct {
	MissionaryID        int    `db:"missionary_id"`
	KoreanName          string `db:"korean_name"`
	EnglishName         string `db:"english_name"`
	MissionName         string `db:"mission_name"`
	Gender              string `db:"gender"`
	BirthDate           string `db:"birth_date"`
	PassportNumber      string `db:"passport_number"`
	AdmissionDate       string `db:"admission_date"`
	DispatchDate        string `db:"dispatch_date"`
	TrainingInstitution string `db:"training_institution"`
	TrainingBatch       string `db:"training_batch"`
	TrainingStartDate   string `db:"training_start_date"`
	TrainingEndDate     string `db:"training_end_date"`
	Address             string `db:"address"`
}

// Present reports whether a spouse row should be written at all.
func (s Spouse) Present() bool {
	return s.KoreanName != "" || s.EnglishName != ""
}

type Contact struct {
	MissionaryID          int            `db:"missionary_id"`
	LocalAddress          string         `db:"local_address"`
	Phone1                string         `db:"phone1"`
	Phone2                string         `db:"phone2"`
	FaxNumber             string         `db:"fax_number"`
	MobilePhone           string         `db:"mobile_phone"`
	Email1                string         `db:"email1"`
	Email2                string         `db:"email2"`
	HomepageURL           string         `db:"homepage_url"`
	FamilyContact         string         `db:"family_contact"`
	DomesticFamilyAddress string         `db:"domestic_family_address"`
	VirtualAccount        string         `db:"virtual_account"`
	TravelInsuranceStatus string         `db:"travel_insurance_status"`
	NationalPensionStatus string         `db:"national_pension_status"`
	RegularMail           pq.StringArray `db:"regular_mail"`
	PublicationName       string         `db:"publication_name"`
}

type Consent struct {
	MissionaryID int       `db:"missionary_id"`
	ConsentGiven bool      `db:"consent_given"`
	ConsentDate  time.Time `db:"consent_date"`
	IPAddress    string    `db:"ip_address"`
	UserAgent    string    `db:"user_agent"`
}

// FileUpload is the metadata row of an attachment stored in object storage.
type FileUpload struct {
	MissionaryID     int    `db:"missionary_id"`
	FileType         string `db:"file_type"`
	OriginalFilename string `db:"original_filename"`
	StoredFilename   string `db:"stored_filename"`
	FilePath         string `db:"file_path"`
	FileSize         int64  `db:"file_size"`
	MimeType         string `db:"mime_type"`
}

// Registration groups the rows written together when a missionary is registered.
type Registration struct {
	Missionary Missionary
	Spouse     Spouse
	Contact    Contact
	Consent    Consent
}

// Summary is a list row: the basic record joined with its primary contact.
type Summary struct {
	ID           int       `db:"id"`
	MissionaryID string    `db:"missionary_id"`
	KoreanName   string    `db:"korean_name"`
	Gender       string    `db:"gender"`
	MissionName  string    `db:"mission_name"`
	CreatedAt    time.Time `db:"created_at"`
	MobilePhone  *string   `db:"mobile_phone" table:"contact" column:"mobile_phone"`
	Email1       *string   `db:"email1"       table:"contact" column:"email1"`
}

func (Summary) GetJoinQuery() string {
	return "LEFT JOIN ncm_m10002 contact ON contact.missionary_id = ncm_m10001.id"
}

// Detail is everything stored for one missionary.
type Detail struct {
	Missionary Missionary
	Spouse     Spouse
	Contact    Contact
	Consent    Consent
	Files      []FileUpload
}
