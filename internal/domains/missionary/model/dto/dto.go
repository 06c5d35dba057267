package dto

import (
	"kmc/internal/domains/missionary/model"
	"kmc/shared/constant"
	"kmc/shared/datefmt"
	"kmc/shared/timezone"
	"mime/multipart"
	"time"

	"github.com/lib/pq"
)

const (
	SortByName    = "name"
	SortByCreated = "created"
)

type BasicInfo struct {
	MissionaryID        string `json:"missionary_id"        validate:"omitempty,max=20"`
	KoreanName          string `json:"korean_name"          validate:"omitempty,max=50"`
	EnglishName         string `json:"english_name"         validate:"omitempty,max=100"`
	MissionName         string `json:"mission_name"         validate:"omitempty,max=100"`
	Gender              string `json:"gender"               validate:"omitempty,oneof=M F"`
	MaritalStatus       string `json:"marital_status"       validate:"omitempty,max=10"`
	ResidentNumber1     string `json:"resident_number1"     validate:"omitempty,numeric,len=6"`
	ResidentNumber2     string `json:"resident_number2"     validate:"omitempty,numeric,len=7"`
	BirthDate           string `json:"birth_date"           validate:"omitempty,ymd"`
	PassportNumber      string `json:"passport_number"      validate:"omitempty,max=20"`
	AdmissionDate       string `json:"admission_date"       validate:"omitempty,ymd"`
	DispatchDate        string `json:"dispatch_date"        validate:"omitempty,ymd"`
	EndDate             string `json:"end_date"             validate:"omitempty,ymd"`
	TrainingInstitution string `json:"training_institution" validate:"omitempty,max=100"`
	TrainingBatch       string `json:"training_batch"       validate:"omitempty,max=20"`
	TrainingStartDate   string `json:"training_start_date"  validate:"omitempty,ymd"`
	TrainingEndDate     string `json:"training_end_date"    validate:"omitempty,ymd"`
	Address             string `json:"address"              validate:"omitempty,max=200"`
}

type SpouseInfo struct {
	KoreanName          string `json:"korean_name"          validate:"omitempty,max=50"`
	EnglishName         string `json:"english_name"         validate:"omitempty,max=100"`
	MissionName         string `json:"mission_name"         validate:"omitempty,max=100"`
	Gender              string `json:"gender"               validate:"omitempty,oneof=M F"`
	BirthDate           string `json:"birth_date"           validate:"omitempty,ymd"`
	PassportNumber      string `json:"passport_number"      validate:"omitempty,max=20"`
	AdmissionDate       string `json:"admission_date"       validate:"omitempty,ymd"`
	DispatchDate        string `json:"dispatch_date"        validate:"omitempty,ymd"`
	TrainingInstitution string `json:"training_institution" validate:"omitempty,max=100"`
	TrainingBatch       string `json:"training_batch"       validate:"omitempty,max=20"`
	TrainingStartDate   string `json:"training_start_date"  validate:"omitempty,ymd"`
	TrainingEndDate     string `json:"training_end_date"    validate:"omitempty,ymd"`
	Address             string `json:"address"              validate:"omitempty,max=200"`
}

type ContactInfo struct {
	LocalAddress          string   `json:"local_address"           validate:"omitempty,max=200"`
	Phone1                string   `json:"phone1"                  validate:"omitempty,max=20"`
	Phone2                string   `json:"phone2"                  validate:"omitempty,max=20"`
	FaxNumber             string   `json:"fax_number"              validate:"omitempty,max=20"`
	MobilePhone           string   `json:"mobile_phone"            validate:"omitempty,max=20"`
	Email1                string   `json:"email1"                  validate:"omitempty,email"`
	Email2                string   `json:"email2"                  validate:"omitempty,email"`
	HomepageURL           string   `json:"homepage_url"            validate:"omitempty,url"`
	FamilyContact         string   `json:"family_contact"          validate:"omitempty,max=50"`
	DomesticFamilyAddress string   `json:"domestic_family_address" validate:"omitempty,max=200"`
	VirtualAccount        string   `json:"virtual_account"         validate:"omitempty,max=50"`
	TravelInsuranceStatus string   `json:"travel_insurance_status" validate:"omitempty,max=20"`
	NationalPensionStatus string   `json:"national_pension_status" validate:"omitempty,max=20"`
	RegularMail           []string `json:"regular_mail"            validate:"dive,required,max=50"`
	PublicationName       string   `json:"publication_name"        validate:"omitempty,max=100"`
}

type RegisterMissionaryRequest struct {
	Basic   BasicInfo   `json:"basic"`
	Spouse  SpouseInfo  `json:"spouse"`
	Contact ContactInfo `json:"contact"`
	Consent bool        `json:"consent"`

	// Filled from the request by the handler.
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// ToRegistration maps the form onto table rows, storing every date as YYYYMMDD.
func (r *RegisterMissionaryRequest) ToRegistration(now time.Time) model.Registration {
	b, s, c := r.Basic, r.Spouse, r.Contact

	var endDate *string
	if b.EndDate != constant.Empty {
		end := datefmt.StripDashes(b.EndDate)
		endDate = &end
	}

	return model.Registration{
		Missionary: model.Missionary{
			MissionaryID:        b.MissionaryID,
			KoreanName:          b.KoreanName,
			EnglishName:         b.EnglishName,
			MissionName:         b.MissionName,
			Gender:              b.Gender,
			MaritalStatus:       b.MaritalStatus,
			ResidentNumber1:     b.ResidentNumber1,
			ResidentNumber2:     b.ResidentNumber2,
			BirthDate:           datefmt.StripDashes(b.BirthDate),
			PassportNumber:      b.PassportNumber,
			AdmissionDate:       datefmt.StripDashes(b.AdmissionDate),
			DispatchDate:        datefmt.StripDashes(b.DispatchDate),
			EndDate:             endDate,
			TrainingInstitution: b.TrainingInstitution,
			TrainingBatch:       b.TrainingBatch,
			TrainingStartDate:   datefmt.StripDashes(b.TrainingStartDate),
			TrainingEndDate:     datefmt.StripDashes(b.TrainingEndDate),
			Address:             b.Address,
		},
		Spouse: model.Spouse{
			KoreanName:          s.KoreanName,
			EnglishName:         s.EnglishName,
			MissionName:         s.MissionName,
			Gender:              s.Gender,
			BirthDate:           datefmt.StripDashes(s.BirthDate),
			PassportNumber:      s.PassportNumber,
			AdmissionDate:       datefmt.StripDashes(s.AdmissionDate),
			DispatchDate:        datefmt.StripDashes(s.DispatchDate),
			TrainingInstitution: s.TrainingInstitution,
			TrainingBatch:       s.TrainingBatch,
			TrainingStartDate:   datefmt.StripDashes(s.TrainingStartDate),
			TrainingEndDate:     datefmt.StripDashes(s.TrainingEndDate),
			Address:             s.Address,
		},
		Contact: model.Contact{
			LocalAddress:          c.LocalAddress,
			Phone1:                c.Phone1,
			Phone2:                c.Phone2,
			FaxNumber:             c.FaxNumber,
			MobilePhone:           c.MobilePhone,
			Email1:                c.Email1,
			Email2:                c.Email2,
			HomepageURL:           c.HomepageURL,
			FamilyContact:         c.FamilyContact,
			DomesticFamilyAddress: c.DomesticFamilyAddress,
			VirtualAccount:        c.VirtualAccount,
			TravelInsuranceStatus: c.TravelInsuranceStatus,
			NationalPensionStatus: c.NationalPensionStatus,
			RegularMail:           pq.StringArray(c.RegularMail),
			PublicationName:       c.PublicationName,
		},
		Consent: model.Consent{
			ConsentGiven: r.Consent,
			ConsentDate:  now,
			IPAddress:    r.IPAddress,
			UserAgent:    r.UserAgent,
		},
	}
}

type RegisterMissionaryResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

type ListMissionariesRequest struct {
	Keyword string `json:"keyword"  validate:"omitempty,max=50"`
	SortBy  string `json:"sort_by"  validate:"omitempty,oneof=name created"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC asc desc"`
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1,max=100"`
}

type MissionarySummary struct {
	ID           int    `json:"id"`
	MissionaryID string `json:"missionary_id"`
	KoreanName   string `json:"korean_name"`
	Gender       string `json:"gender"`
	MissionName  string `json:"mission_name"`
	MobilePhone  string `json:"mobile_phone"`
	Email1       string `json:"email1"`
	CreatedAt    string `json:"created_at"`
}

type ListMissionariesResponse struct {
	Missionaries []MissionarySummary `json:"missionaries"`
	TotalData    int                 `json:"total_data"`
	Page         int                 `json:"page,omitempty"`
	Limit        int                 `json:"limit,omitempty"`
	TotalPage    int                 `json:"total_page,omitempty"`
}

func (r *ListMissionariesResponse) FromModels(summaries []model.Summary, total int) {
	r.Missionaries = make([]MissionarySummary, 0, len(summaries))

	for _, m := range summaries {
		r.Missionaries = append(r.Missionaries, MissionarySummary{
			ID:           m.ID,
			MissionaryID: m.MissionaryID,
			KoreanName:   m.KoreanName,
			Gender:       m.Gender,
			MissionName:  m.MissionName,
			MobilePhone:  deref(m.MobilePhone),
			Email1:       deref(m.Email1),
			CreatedAt:    formatTime(m.CreatedAt),
		})
	}

	r.TotalData = total
}

type FileResponse struct {
	FileType         string `json:"file_type"`
	OriginalFilename string `json:"original_filename"`
	FilePath         string `json:"file_path"`
	FileSize         int64  `json:"file_size"`
	MimeType         string `json:"mime_type"`
}

func (r *FileResponse) FromModel(f model.FileUpload) {
	r.FileType = f.FileType
	r.OriginalFilename = f.OriginalFilename
	r.FilePath = f.FilePath
	r.FileSize = f.FileSize
	r.MimeType = f.MimeType
}

type MissionaryResponse struct {
	ID           int            `json:"id"`
	Basic        BasicInfo      `json:"basic"`
	Spouse       *SpouseInfo    `json:"spouse,omitempty"`
	Contact      ContactInfo    `json:"contact"`
	Consent      bool           `json:"consent"`
	ConsentDate  string         `json:"consent_date,omitempty"`
	Files        []FileResponse `json:"files"`
	RegisteredAt string         `json:"registered_at"`
}

func (r *MissionaryResponse) FromModel(d model.Detail) {
	m, c := d.Missionary, d.Contact

	r.ID = m.ID
	r.Basic = BasicInfo{
		MissionaryID:        m.MissionaryID,
		KoreanName:          m.KoreanName,
		EnglishName:         m.EnglishName,
		MissionName:         m.MissionName,
		Gender:              m.Gender,
		MaritalStatus:       m.MaritalStatus,
		ResidentNumber1:     m.ResidentNumber1,
		ResidentNumber2:     m.ResidentNumber2,
		BirthDate:           datefmt.DisplayYMD(m.BirthDate),
		PassportNumber:      m.PassportNumber,
		AdmissionDate:       datefmt.DisplayYMD(m.AdmissionDate),
		DispatchDate:        datefmt.DisplayYMD(m.DispatchDate),
		EndDate:             datefmt.DisplayYMD(deref(m.EndDate)),
		TrainingInstitution: m.TrainingInstitution,
		TrainingBatch:       m.TrainingBatch,
		TrainingStartDate:   datefmt.DisplayYMD(m.TrainingStartDate),
		TrainingEndDate:     datefmt.DisplayYMD(m.TrainingEndDate),
		Address:             m.Address,
	}

	if s := d.Spouse; s.Present() {
		r.Spouse = &SpouseInfo{
			KoreanName:          s.KoreanName,
			EnglishName:         s.EnglishName,
			MissionName:         s.MissionName,
			Gender:              s.Gender,
			BirthDate:           datefmt.DisplayYMD(s.BirthDate),
			PassportNumber:      s.PassportNumber,
			AdmissionDate:       datefmt.DisplayYMD(s.AdmissionDate),
			DispatchDate:        datefmt.DisplayYMD(s.DispatchDate),
			TrainingInstitution: s.TrainingInstitution,
			TrainingBatch:       s.TrainingBatch,
			TrainingStartDate:   datefmt.DisplayYMD(s.TrainingStartDate),
			TrainingEndDate:     datefmt.DisplayYMD(s.TrainingEndDate),
			Address:             s.Address,
		}
	}

	r.Contact = ContactInfo{
		LocalAddress:          c.LocalAddress,
		Phone1:                c.Phone1,
		Phone2:                c.Phone2,
		FaxNumber:             c.FaxNumber,
		MobilePhone:           c.MobilePhone,
		Email1:                c.Email1,
		Email2:                c.Email2,
		HomepageURL:           c.HomepageURL,
		FamilyContact:         c.FamilyContact,
		DomesticFamilyAddress: c.DomesticFamilyAddress,
		VirtualAccount:        c.VirtualAccount,
		TravelInsuranceStatus: c.TravelInsuranceStatus,
		NationalPensionStatus: c.NationalPensionStatus,
		RegularMail:           []string(c.RegularMail),
		PublicationName:       c.PublicationName,
	}

	r.Consent = d.Consent.ConsentGiven
	r.ConsentDate = formatTime(d.Consent.ConsentDate)
	r.RegisteredAt = formatTime(m.CreatedAt)

	r.Files = make([]FileResponse, 0, len(d.Files))
	for _, f := range d.Files {
		var file FileResponse
		file.FromModel(f)

		r.Files = append(r.Files, file)
	}
}

type UploadFileRequest struct {
	FileType string                `validate:"required,oneof=photo spousePhoto attached familyPhoto"`
	File     *multipart.FileHeader `validate:"required"`
}

type UploadFileResponse struct {
	FileResponse
	URL     string `json:"url"`
	Message string `json:"message"`
}

func deref(s *string) string {
	if s == nil {
		return constant.Empty
	}

	return *s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(t, constant.DateFormat)
}
