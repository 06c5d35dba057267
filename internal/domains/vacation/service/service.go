package service

import (
	"context"
	"fmt"
	"html"
	"kmc/config"
	"kmc/infras/mail"
	"kmc/infras/otel"
	"kmc/internal/domains/vacation/model"
	"kmc/internal/domains/vacation/model/dto"
	"kmc/internal/domains/vacation/repository"
	"kmc/shared"
	"kmc/shared/cache"
	"kmc/shared/constant"
	"kmc/shared/datefmt"
	"kmc/shared/failure"
	"kmc/shared/status"
	"kmc/shared/timezone"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheListVacation = constant.CachePrefixVacation + "list"

	msgSubmitted     = "휴가신청이 완료되었습니다."
	msgResubmitted   = "휴가신청이 수정되었습니다."
	msgDuplicateDays = "이미 신청된 날짜가 있습니다: "
	msgNotOwner      = "본인의 휴가신청만 수정할 수 있습니다."
	msgApproved      = "승인된 휴가신청은 수정할 수 없습니다."
	msgNotFound      = "vacation request not found"
)

var managerRoles = []string{constant.RoleManager, constant.RoleSuperAdmin}

type Vacation interface {
	Submit(ctx context.Context, req dto.SubmitVacationRequest) (dto.SubmitVacationResponse, error)
	Resubmit(ctx context.Context, reqNo int, req dto.SubmitVacationRequest) (dto.SubmitVacationResponse, error)
	List(ctx context.Context, req dto.ListVacationsRequest) (dto.ListVacationsResponse, error)
	Respond(ctx context.Context, reqNo int, req dto.RespondVacationRequest) error
}

type serviceImpl struct {
	repo   repository.Vacation
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	mailer mail.Mailer
}

func New(repo repository.Vacation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, mailer mail.Mailer) Vacation {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		mailer: mailer,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitVacationRequest) (res dto.SubmitVacationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	email := shared.CurrentUser(ctx)

	plan, err := req.Plan()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.ensureFree(ctx, email, plan, 0); err != nil {
		return res, err
	}

	request := model.Request{
		ReqEmail: email,
		ReqDate:  timezone.Now(),
		ReqCd:    model.KindVacation,
		ReqDesc:  req.Desc,
		ResCd:    string(status.RequestWaiting),
	}

	reqNo, err := s.repo.Create(ctx, request, plan)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to submit vacation")

		return res, fmt.Errorf("failed to submit vacation: %w", err)
	}

	s.invalidate(ctx)
	res.FromPlan(reqNo, plan, msgSubmitted)

	return res, nil
}

func (s *serviceImpl) Resubmit(ctx context.Context, reqNo int, req dto.SubmitVacationRequest) (res dto.SubmitVacationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resubmit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	email := shared.CurrentUser(ctx)

	current, err := s.find(ctx, reqNo)
	if err != nil {
		return res, err
	}

	if current.ReqEmail != email {
		return res, failure.Forbidden(msgNotOwner) // nolint:wrapcheck
	}

	if current.Approved() {
		return res, failure.Conflict(msgApproved) // nolint:wrapcheck
	}

	plan, err := req.Plan()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.ensureFree(ctx, email, plan, reqNo); err != nil {
		return res, err
	}

	current.ReqDesc = req.Desc

	if err = s.repo.Resubmit(ctx, current, plan); err != nil {
		log.Error().Err(err).Int("reqNo", reqNo).Msg("failed to resubmit vacation")

		return res, fmt.Errorf("failed to resubmit vacation: %w", err)
	}

	s.invalidate(ctx)
	res.FromPlan(reqNo, plan, msgResubmitted)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListVacationsRequest) (res dto.ListVacationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheListVacation, req.Email)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vacations")

		return res, nil
	}

	views, err := s.repo.List(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vacations")

		return res, fmt.Errorf("failed to get vacations: %w", err)
	}

	res.FromModels(views)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vacations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Respond(ctx context.Context, reqNo int, req dto.RespondVacationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Respond")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if !slices.Contains(managerRoles, shared.CurrentRole(ctx)) {
		return failure.ForbiddenError
	}

	current, err := s.find(ctx, reqNo)
	if err != nil {
		return err
	}

	decision := req.Status()
	responder := shared.CurrentUser(ctx)

	response := map[string]any{
		model.FieldResCd:    string(decision),
		model.FieldResEmail: responder,
		model.FieldResDate:  timezone.Now(),
		model.FieldResDesc:  req.Desc,
	}

	if err = s.repo.Respond(ctx, reqNo, response); err != nil {
		log.Error().Err(err).Int("reqNo", reqNo).Msg("failed to respond to vacation")

		return fmt.Errorf("failed to respond to vacation: %w", err)
	}

	s.invalidate(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.mailer.Send(c, decisionMail(current, decision, req.Desc)); err != nil {
			log.Warn().Err(err).Int("reqNo", reqNo).Msg("failed to notify vacation requester")
		}
	}()

	return nil
}

// ensureFree rejects a plan overlapping days the requester already holds.
func (s *serviceImpl) ensureFree(ctx context.Context, email string, plan model.Plan, exceptReqNo int) error {
	booked, err := s.repo.BookedDays(ctx, email, plan.Days, exceptReqNo)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to check booked vacation days")

		return fmt.Errorf("failed to check booked vacation days: %w", err)
	}

	if len(booked) == 0 {
		return nil
	}

	dates := make([]string, 0, len(booked))
	for _, day := range booked {
		dates = append(dates, datefmt.DisplayYMD(day))
	}

	return failure.Conflict(msgDuplicateDays + strings.Join(dates, ", ")) // nolint:wrapcheck
}

func (s *serviceImpl) find(ctx context.Context, reqNo int) (model.Request, error) {
	request, err := s.repo.Get(ctx, reqNo)
	if err != nil {
		log.Error().Err(err).Int("reqNo", reqNo).Msg("failed to get vacation request")

		return request, fmt.Errorf("failed to get vacation request: %w", err)
	}

	if request.ReqNo == 0 {
		return request, failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	return request, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CachePrefixVacation)
	}()
}

func decisionMail(request model.Request, decision status.RequestStatus, desc string) mail.Mail {
	subject := fmt.Sprintf("[KMC] 휴가신청이 %s되었습니다", decision.Label())

	body := fmt.Sprintf("<p>%s님의 휴가신청(No. %d)이 <strong>%s</strong>되었습니다.</p>",
		html.EscapeString(request.ReqEmail), request.ReqNo, decision.Label())
	if desc != constant.Empty {
		body += "<p>" + html.EscapeString(desc) + "</p>"
	}

	return mail.Mail{
		To:      []string{request.ReqEmail},
		Subject: subject,
		HTML:    body,
	}
}
