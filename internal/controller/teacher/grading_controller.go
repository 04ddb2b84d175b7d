package teacher

import (
	"net/http"

	"classpoint_backend/internal/controller"
	"classpoint_backend/internal/dto"
	"classpoint_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type GradingController struct {
	gradingService service.GradingService
	testService    service.TestService
}

func NewGradingController(gradingService service.GradingService, testService service.TestService) *GradingController {
	return &GradingController{
		gradingService: gradingService,
		testService:    testService,
	}
}

// GradeAttempt godoc
// @Summary (Teacher) Grade a student's test attempt
// @Description Applies a batch of per-response grade overrides, recomputes the attempt's percentage over all of its responses, persists it and notifies the student. Fields absent from an entry keep their stored values.
// @Tags Teacher - Grading
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param classroom_id path int true "Classroom ID"
// @Param test_id path int true "Test ID"
// @Param attempt_id path int true "Test attempt ID"
// @Param grades body dto.GradeAttemptDTO true "Grade entries, one per response"
// @Success 200 {object} dto.GradingResultDTO "Updated attempt plus the raw score totals"
// @Failure 400 {object} dto.ErrorResponse "Empty batch or malformed grade value"
// @Failure 401 {object} dto.ErrorResponse "No caller identity"
// @Failure 403 {object} dto.ErrorResponse "Caller may not grade in this classroom"
// @Failure 404 {object} dto.ErrorResponse "Attempt or response not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{classroom_id}/tests/{test_id}/attempts/{attempt_id}/grade [post]
func (c *GradingController) GradeAttempt(ctx *gin.Context) {
	callerID, ok := controller.CallerID(ctx)
	if !ok {
		controller.RenderUnauthenticated(ctx)
		return
	}
	classroomID, ok1 := controller.ParamUint(ctx, "classroom_id")
	testID, ok2 := controller.ParamUint(ctx, "test_id")
	attemptID, ok3 := controller.ParamUint(ctx, "attempt_id")
	if !ok1 || !ok2 || !ok3 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "classroom_id, test_id and attempt_id must be positive integers"})
		return
	}

	var req dto.GradeAttemptDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("GradeAttempt: failed to bind request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    string(service.KindInvalidBatch),
			Message: "invalid request body",
			Details: []string{err.Error()},
		})
		return
	}

	result, err := c.gradingService.GradeAttempt(callerID, classroomID, testID, attemptID, req.Grades)
	if err != nil {
		controller.RenderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// RecomputeScore godoc
// @Summary (Teacher) Recompute an attempt's score without grading
// @Description Re-runs aggregation and score persistence over the attempt's current responses. Repairs an attempt whose responses were updated but whose score write did not land.
// @Tags Teacher - Grading
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param classroom_id path int true "Classroom ID"
// @Param test_id path int true "Test ID"
// @Param attempt_id path int true "Test attempt ID"
// @Success 200 {object} dto.GradingResultDTO
// @Failure 401 {object} dto.ErrorResponse "No caller identity"
// @Failure 403 {object} dto.ErrorResponse "Caller may not grade in this classroom"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{classroom_id}/tests/{test_id}/attempts/{attempt_id}/recompute [post]
func (c *GradingController) RecomputeScore(ctx *gin.Context) {
	callerID, ok := controller.CallerID(ctx)
	if !ok {
		controller.RenderUnauthenticated(ctx)
		return
	}
	classroomID, ok1 := controller.ParamUint(ctx, "classroom_id")
	testID, ok2 := controller.ParamUint(ctx, "test_id")
	attemptID, ok3 := controller.ParamUint(ctx, "attempt_id")
	if !ok1 || !ok2 || !ok3 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "classroom_id, test_id and attempt_id must be positive integers"})
		return
	}

	result, err := c.gradingService.RecomputeScore(callerID, classroomID, testID, attemptID)
	if err != nil {
		controller.RenderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListAttempts godoc
// @Summary (Teacher) List a test's attempts for grading
// @Description Grading queue for one test: every attempt with its response and graded-response counts.
// @Tags Teacher - Grading
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param classroom_id path int true "Classroom ID"
// @Param test_id path int true "Test ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "No caller identity"
// @Failure 403 {object} dto.ErrorResponse "Caller may not grade in this classroom"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{classroom_id}/tests/{test_id}/attempts [get]
func (c *GradingController) ListAttempts(ctx *gin.Context) {
	callerID, ok := controller.CallerID(ctx)
	if !ok {
		controller.RenderUnauthenticated(ctx)
		return
	}
	classroomID, ok1 := controller.ParamUint(ctx, "classroom_id")
	testID, ok2 := controller.ParamUint(ctx, "test_id")
	if !ok1 || !ok2 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "classroom_id and test_id must be positive integers"})
		return
	}

	attempts, err := c.testService.ListAttempts(callerID, classroomID, testID)
	if err != nil {
		controller.RenderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetAttemptDetail godoc
// @Summary (Teacher) Get one attempt with all responses
// @Description Full grading view: the attempt plus its responses and their questions, in question order.
// @Tags Teacher - Grading
// @Produce json
// @Param X-User-ID header int true "Caller user ID"
// @Param classroom_id path int true "Classroom ID"
// @Param attempt_id path int true "Test attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 401 {object} dto.ErrorResponse "No caller identity"
// @Failure 403 {object} dto.ErrorResponse "Caller may not grade in this classroom"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{classroom_id}/attempts/{attempt_id} [get]
func (c *GradingController) GetAttemptDetail(ctx *gin.Context) {
	callerID, ok := controller.CallerID(ctx)
	if !ok {
		controller.RenderUnauthenticated(ctx)
		return
	}
	classroomID, ok1 := controller.ParamUint(ctx, "classroom_id")
	attemptID, ok2 := controller.ParamUint(ctx, "attempt_id")
	if !ok1 || !ok2 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "classroom_id and attempt_id must be positive integers"})
		return
	}

	detail, err := c.testService.GetAttemptDetail(callerID, classroomID, attemptID)
	if err != nil {
		controller.RenderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
