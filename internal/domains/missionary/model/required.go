package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRegularMailRequired = errors.New("정기우편물을 최소 하나 이상 선택해주세요.")
	ErrConsentRequired     = errors.New("개인정보 제공에 동의해주세요.")
)

type labeled struct {
	value string
	label string
}

func missing(fields []labeled) []string {
	var names []string

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			names = append(names, f.label)
		}
	}

	return names
}

func missingError(section string, names []string) error {
	return fmt.Errorf("%s에서 다음 필수 항목을 입력해주세요: %s", section, strings.Join(names, ", "))
}

// Check reports the first section of the registration with unfilled required
// fields, listing their labels in form order.
func (r Registration) Check() error {
	m := r.Missionary

	basic := missing([]labeled{
		{m.MissionaryID, "사역자 ID"},
		{m.KoreanName, "한글명"},
		{m.EnglishName, "영문명"},
		{m.MissionName, "사역명"},
		{m.MaritalStatus, "결혼여부"},
		{m.ResidentNumber1, "주민등록번호 앞자리"},
		{m.ResidentNumber2, "주민등록번호 뒷자리"},
		{m.BirthDate, "생년월일"},
		{m.PassportNumber, "여권번호"},
		{m.AdmissionDate, "허입일자"},
		{m.DispatchDate, "파송일자"},
		{m.TrainingInstitution, "훈련기관"},
		{m.TrainingBatch, "훈련기수"},
		{m.TrainingStartDate, "훈련 시작일"},
		{m.TrainingEndDate, "훈련 종료일"},
		{m.Address, "주소"},
	})
	if len(basic) > 0 {
		return missingError("사역자 기본정보", basic)
	}

	if !m.Single() {
		s := r.Spouse

		spouse := missing([]labeled{
			{s.KoreanName, "배우자 한글명"},
			{s.EnglishName, "배우자 영문명"},
			{s.MissionName, "배우자 사역명"},
			{s.BirthDate, "배우자 생년월일"},
			{s.PassportNumber, "배우자 여권번호"},
			{s.AdmissionDate, "배우자 허입일자"},
			{s.DispatchDate, "배우자 파송일자"},
			{s.TrainingInstitution, "배우자 훈련기관"},
			{s.TrainingBatch, "배우자 훈련기수"},
			{s.TrainingStartDate, "배우자 훈련 시작일"},
			{s.TrainingEndDate, "배우자 훈련 종료일"},
		})
		if len(spouse) > 0 {
			return missingError("배우자 정보", spouse)
		}
	}

	c := r.Contact

	contact := missing([]labeled{
		{c.LocalAddress, "현지주소"},
		{c.MobilePhone, "핸드폰"},
		{c.Email1, "E-mail1"},
		{c.DomesticFamilyAddress, "국내가족주소"},
	})
	if len(contact) > 0 {
		return missingError("추가 정보", contact)
	}

	if len(c.RegularMail) == 0 {
		return ErrRegularMailRequired
	}

	if !r.Consent.ConsentGiven {
		return ErrConsentRequired
	}

	return nil
}
