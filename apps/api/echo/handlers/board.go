package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/metarama/workboard/core"
	"github.com/metarama/workboard/core/board"
)

type (
	statusResponse struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}

	scheduleResponse struct {
		Status   string             `json:"status"`
		Message  string             `json:"message"`
		Schedule board.ScheduleItem `json:"schedule"`
	}
)

type boardApi struct {
	owner   string // board owner userId, resolved from config at wiring time
	service *board.Service
}

func RegisterBoardAPI(e *echo.Echo, owner string, svc *board.Service) {
	api := boardApi{owner: owner, service: svc}

	e.GET("/", api.boardRetrieve)
	e.GET("/project/:code", api.projectRetrieve)
	e.POST("/add_schedule", api.scheduleCreate)
	e.POST("/update_report", api.reportUpdate)
}

// Handlers

func (api *boardApi) boardRetrieve(ctx echo.Context) error {
	day := time.Now()
	if raw := ctx.QueryParam("date"); raw != "" {
		var err error
		if day, err = time.Parse("2006-01-02", raw); err != nil {
			return core.NewValidationError(nil, core.FieldError{Field: "date", Error: "must be a YYYY-MM-DD date"})
		}
	}

	view, err := api.service.BuildView(api.owner, day)
	if err != nil {
		if errors.Cause(err) == board.ErrUserNotFound {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return ctx.JSON(http.StatusOK, view)
}

func (api *boardApi) projectRetrieve(ctx echo.Context) error {
	project, err := api.service.GetProject(ctx.Param("code"))
	if err != nil {
		if errors.Cause(err) == board.ErrProjectNotFound {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}
	return ctx.JSON(http.StatusOK, project)
}

func (api *boardApi) scheduleCreate(ctx echo.Context) error {
	data := new(board.NewScheduleItem)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	date := data.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	item, err := api.service.AddSchedule(api.owner, date, board.ScheduleItem{
		Time:   data.Time,
		Period: data.Period,
		Title:  data.Title,
	})
	if err != nil {
		if errors.Cause(err) == board.ErrInvalidTime {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return ctx.JSON(http.StatusOK, scheduleResponse{
		Status:   "success",
		Message:  "schedule added",
		Schedule: item,
	})
}

func (api *boardApi) reportUpdate(ctx echo.Context) error {
	data := new(board.ReportUpdate)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if _, err := api.service.UpdateReport(api.owner, *data); err != nil {
		if errors.Cause(err) == board.ErrReportNotFound {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(http.StatusOK, statusResponse{
		Status:  "success",
		Message: "report updated",
	})
}
