package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kmc/config"
	"kmc/infras/otel/mocks"
	"kmc/infras/s3"
	s3Mocks "kmc/infras/s3/mocks"
	missionaryMocks "kmc/internal/domains/missionary/mocks"
	"kmc/internal/domains/missionary/model"
	"kmc/internal/domains/missionary/model/dto"
	"kmc/internal/domains/missionary/service"
	"kmc/shared/cache"
	cacheMocks "kmc/shared/cache/mocks"
	gDto "kmc/shared/dto"
	"kmc/shared/failure"
)

const bucket = "missionary-files"

type fixture struct {
	repo  *missionaryMocks.MockMissionary
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Missionary
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  missionaryMocks.NewMockMissionary(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Upload.MaxFileSizeMB = 10
	cfg.Upload.MissionaryBucket = bucket

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func singleRequest() dto.RegisterMissionaryRequest {
	return dto.RegisterMissionaryRequest{
		Basic: dto.BasicInfo{
			MissionaryID:        "M-0002",
			KoreanName:          "박선교",
			EnglishName:         "Park Seongyo",
			MissionName:         "Timothy",
			MaritalStatus:       model.MaritalSingle,
			ResidentNumber1:     "900101",
			ResidentNumber2:     "1234567",
			BirthDate:           "1990-01-01",
			PassportNumber:      "M11112222",
			AdmissionDate:       "2020-03-01",
			DispatchDate:        "2021-03-01",
			TrainingInstitution: "GMTC",
			TrainingBatch:       "20",
			TrainingStartDate:   "2020-01-01",
			TrainingEndDate:     "2020-02-28",
			Address:             "서울시 마포구",
		},
		Contact: dto.ContactInfo{
			LocalAddress:          "Ulaanbaatar",
			MobilePhone:           "010-1111-2222",
			Email1:                "park@mission.org",
			DomesticFamilyAddress: "대전시 유성구",
			RegularMail:           []string{"기도편지"},
		},
		Consent:   true,
		IPAddress: "10.0.0.8",
		UserAgent: "Mozilla/5.0",
	}
}

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
	}
}

func TestMissionaryService_Register(t *testing.T) {
	t.Run("stores dates compact and consent metadata", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r model.Registration) (int, error) {
				assert.Equal(t, "19900101", r.Missionary.BirthDate)
				assert.Nil(t, r.Missionary.EndDate)
				assert.False(t, r.Spouse.Present())
				assert.Equal(t, pq.StringArray{"기도편지"}, r.Contact.RegularMail)
				assert.True(t, r.Consent.ConsentGiven)
				assert.Equal(t, "10.0.0.8", r.Consent.IPAddress)
				assert.False(t, r.Consent.ConsentDate.IsZero())

				return 21, nil
			})

		res, err := f.svc.Register(context.Background(), singleRequest())
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 21, res.ID)
		assert.Equal(t, "사역자 정보가 성공적으로 저장되었습니다.", res.Message)
	})

	t.Run("married without spouse is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)

		req := singleRequest()
		req.Basic.MaritalStatus = "기혼"

		_, err := f.svc.Register(context.Background(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "배우자 한글명")
	})

	t.Run("missing consent", func(t *testing.T) {
		f := newFixture(t)

		req := singleRequest()
		req.Consent = false

		_, err := f.svc.Register(context.Background(), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, model.ErrConsentRequired.Error(), err.Error())
	})

	t.Run("duplicate missionary id", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(0, &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

		_, err := f.svc.Register(context.Background(), singleRequest())

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "이미 등록된 사역자 ID입니다.", err.Error())
	})
}

func TestMissionaryService_List(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.ListMissionariesRequest
		wantSortBy string
		wantDir    string
	}{
		{name: "newest first by default", req: dto.ListMissionariesRequest{}, wantSortBy: "ncm_m10001.created_at", wantDir: gDto.SortDirDesc},
		{name: "by name ascending", req: dto.ListMissionariesRequest{SortBy: dto.SortByName}, wantSortBy: "ncm_m10001.korean_name", wantDir: gDto.SortDirAsc},
		{name: "by name descending", req: dto.ListMissionariesRequest{SortBy: dto.SortByName, SortDir: "desc"}, wantSortBy: "ncm_m10001.korean_name", wantDir: gDto.SortDirDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			phone := "010-1111-2222"

			f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
			f.repo.EXPECT().List(gomock.Any(), gomock.Any(), tt.req.Keyword).
				DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ string) ([]model.Summary, int, error) {
					assert.Equal(t, tt.wantSortBy, params.SortBy)
					assert.Equal(t, tt.wantDir, params.SortDir)

					return []model.Summary{{ID: 21, KoreanName: "박선교", MobilePhone: &phone}}, 1, nil
				})

			res, err := f.svc.List(context.Background(), tt.req)
			time.Sleep(10 * time.Millisecond)

			require.NoError(t, err)
			require.Equal(t, 1, res.TotalData)
			assert.Equal(t, 1, res.TotalPage)
			assert.Equal(t, phone, res.Missionaries[0].MobilePhone)
			assert.Empty(t, res.Missionaries[0].Email1)
		})
	}
}

func TestMissionaryService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "missionary:get:99", gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), 99).Return(model.Detail{}, nil)

		_, err := f.svc.Get(context.Background(), 99)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("detail with display dates", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "missionary:get:21", gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), 21).Return(model.Detail{
			Missionary: model.Missionary{ID: 21, KoreanName: "박선교", BirthDate: "19900101", MaritalStatus: model.MaritalSingle},
			Contact:    model.Contact{RegularMail: pq.StringArray{"기도편지"}},
			Consent:    model.Consent{ConsentGiven: true},
			Files:      []model.FileUpload{{FileType: model.FilePhoto, OriginalFilename: "me.png"}},
		}, nil)

		res, err := f.svc.Get(context.Background(), 21)
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "1990-01-01", res.Basic.BirthDate)
		assert.Nil(t, res.Spouse)
		assert.Equal(t, []string{"기도편지"}, res.Contact.RegularMail)
		require.Len(t, res.Files, 1)
		assert.Equal(t, "me.png", res.Files[0].OriginalFilename)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().Get(gomock.Any(), 21).Return(model.Detail{}, errors.New("connection reset"))

		_, err := f.svc.Get(context.Background(), 21)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestMissionaryService_UploadFile(t *testing.T) {
	found := model.Detail{Missionary: model.Missionary{ID: 21}}

	t.Run("stores object and metadata", func(t *testing.T) {
		f := newFixture(t)
		header := fileHeader("passport.pdf", "application/pdf", 2048)

		f.repo.EXPECT().Get(gomock.Any(), 21).Return(found, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), bucket, "missionaries/21/attached", gomock.Any(), header).
			DoAndReturn(func(_ context.Context, _, directory, fileName string, _ *multipart.FileHeader) (s3.Object, error) {
				assert.Regexp(t, `^\d+_passport\.pdf$`, fileName)

				return s3.Object{Key: directory + "/" + fileName, URL: "https://cdn.kmc.org/" + fileName}, nil
			})
		f.repo.EXPECT().InsertFile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, file model.FileUpload) error {
				assert.Equal(t, 21, file.MissionaryID)
				assert.Equal(t, "passport.pdf", file.OriginalFilename)
				assert.Equal(t, "application/pdf", file.MimeType)
				assert.Equal(t, int64(2048), file.FileSize)
				assert.Contains(t, file.FilePath, "missionaries/21/attached/")

				return nil
			})

		res, err := f.svc.UploadFile(context.Background(), 21, dto.UploadFileRequest{FileType: model.FileAttached, File: header})
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "attached 파일이 성공적으로 업로드되었습니다.", res.Message)
		assert.NotEmpty(t, res.URL)
	})

	t.Run("metadata failure removes the object", func(t *testing.T) {
		f := newFixture(t)
		header := fileHeader("photo.png", "image/png", 1024)

		f.repo.EXPECT().Get(gomock.Any(), 21).Return(found, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(s3.Object{Key: "missionaries/21/photo/1_photo.png"}, nil)
		f.repo.EXPECT().InsertFile(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		f.s3.EXPECT().DeleteFile(gomock.Any(), bucket, "missionaries/21/photo/1_photo.png").Return(nil)

		_, err := f.svc.UploadFile(context.Background(), 21, dto.UploadFileRequest{FileType: model.FilePhoto, File: header})

		require.Error(t, err)
	})

	rejected := []struct {
		name   string
		header *multipart.FileHeader
	}{
		{name: "over ten megabytes", header: fileHeader("scan.pdf", "application/pdf", 10<<20+1)},
		{name: "unsupported type", header: fileHeader("notes.txt", "text/plain", 100)},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := f.svc.UploadFile(context.Background(), 21, dto.UploadFileRequest{FileType: model.FileAttached, File: tt.header})

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}

	t.Run("unknown missionary", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), 404).Return(model.Detail{}, nil)

		_, err := f.svc.UploadFile(context.Background(), 404, dto.UploadFileRequest{FileType: model.FilePhoto, File: fileHeader("a.png", "image/png", 10)})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
