package checkin

import (
	"encoding/json"
	"log"
	"net/http"
	"reflect"
	"sync"
	"time"

	"shopops/backend/foundation/web"
	"shopops/backend/internal/attendance"
	"shopops/backend/internal/entity"
	"shopops/backend/internal/repository/postgres"
	"shopops/backend/internal/repository/postgres/checkin"
	"shopops/backend/internal/service"
	"shopops/backend/internal/service/ipintel"

	"github.com/pkg/errors"
)

type Controller struct {
	checkin   CheckIn
	employee  Employee
	ipintel   IPIntel
	trust     ipintel.TrustRule
	loc       *time.Location
	allowance int

	now func() time.Time
}

func NewController(checkinRepo CheckIn, employeeRepo Employee, lookup IPIntel, trust ipintel.TrustRule, loc *time.Location, allowance int) *Controller {
	return &Controller{
		checkin:   checkinRepo,
		employee:  employeeRepo,
		ipintel:   lookup,
		trust:     trust,
		loc:       loc,
		allowance: allowance,
		now:       time.Now,
	}
}

// Create handles POST /checkins. Safe to retry: a repeated call for the same
// employee and local day replays the original record.
func (uc Controller) Create(c *web.Context) error {
	var request checkin.CreateRequest
	if err := c.BindFunc(&request); err != nil {
		return c.Respond(map[string]interface{}{"error": "Employee ID is required"}, http.StatusBadRequest)
	}
	if request.EmployeeID == nil || *request.EmployeeID == "" {
		return c.Respond(map[string]interface{}{"error": "Employee ID is required"}, http.StatusBadRequest)
	}
	employeeID := *request.EmployeeID

	if _, err := uc.employee.GetByEmployeeID(c.Ctx, employeeID); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return c.Respond(map[string]interface{}{"error": "Employee not found"}, http.StatusNotFound)
		}
		return c.Respond(map[string]interface{}{
			"error":   "Failed to record check-in",
			"details": err.Error(),
		}, http.StatusInternalServerError)
	}

	occurredAt := uc.now().UTC()
	local := occurredAt.In(uc.loc)
	workDay := local.Format("2006-01-02")

	existing, err := uc.checkin.GetByWorkDay(c.Ctx, employeeID, workDay)
	if err == nil {
		return c.Respond(map[string]interface{}{
			"status":  "already_checked_in",
			"checkin": existing,
		}, http.StatusOK)
	}
	if !errors.Is(err, postgres.ErrNotFound) {
		return c.Respond(map[string]interface{}{
			"error":   "Failed to record check-in",
			"details": err.Error(),
		}, http.StatusInternalServerError)
	}

	status, penalty := attendance.Classify(attendance.MinuteOfDay(local))
	weekStart := attendance.WeekStart(local)
	clientIP := c.ClientIP()

	// The weekly history fetch and the network lookup are independent reads.
	var (
		wg        sync.WaitGroup
		history   []entity.CheckIn
		histErr   error
		info      ipintel.Info
		raw       json.RawMessage
		lookupErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		history, histErr = uc.checkin.ListBetween(c.Ctx, employeeID, weekStart.UTC(), occurredAt)
	}()
	go func() {
		defer wg.Done()
		info, raw, lookupErr = uc.ipintel.Lookup(c.Ctx, clientIP)
	}()
	wg.Wait()

	// The exemption fails open to "not exempt"; a history fetch failure must
	// never block the check-in itself.
	exempt := false
	if status == attendance.StatusLate10 {
		if histErr != nil {
			log.Println("weekly history fetch failed, denying exemption:", histErr)
		} else {
			exempt = attendance.EvaluateExemption(status, historyEntries(history))
		}
	}
	if exempt {
		penalty = 0
	}

	var trusted *bool
	var networkInfo json.RawMessage
	if lookupErr != nil {
		log.Println("ip intelligence lookup failed, network unknown:", lookupErr)
	} else {
		t := uc.trust.Trusted(info)
		trusted = &t
		networkInfo = raw
	}

	detail := entity.CheckIn{
		EmployeeID:        employeeID,
		WorkDay:           workDay,
		OccurredAt:        occurredAt,
		ComeTime:          local.Format("15:04:05"),
		LateStatus:        string(status),
		PenaltyPercentage: penalty,
		ExemptionApplied:  exempt,
		MealAllowance:     attendance.MealAllowance(status, uc.allowance),
		ClientIP:          clientIP,
		UserAgent:         c.Request.UserAgent(),
		NetworkInfo:       networkInfo,
		IsTrustedNetwork:  trusted,
		CreatedAt:         occurredAt,
	}

	if err := uc.checkin.Create(c.Ctx, &detail); err != nil {
		// A concurrent request can win the insert race; the unique index
		// turns that into the idempotent outcome.
		if errors.Is(err, postgres.ErrAlreadyCheckedIn) {
			winner, gerr := uc.checkin.GetByWorkDay(c.Ctx, employeeID, workDay)
			if gerr == nil {
				return c.Respond(map[string]interface{}{
					"status":  "already_checked_in",
					"checkin": winner,
				}, http.StatusOK)
			}
			err = gerr
		}
		return c.Respond(map[string]interface{}{
			"error":   "Failed to record check-in",
			"details": err.Error(),
		}, http.StatusInternalServerError)
	}

	return c.Respond(map[string]interface{}{
		"status":  "success",
		"checkin": detail,
		"lateStatus": map[string]interface{}{
			"status":  status,
			"penalty": penalty,
			"message": status.Message(),
		},
		"exemptionApplied": exempt,
		"mealAllowance":    detail.MealAllowance,
		"isShopWifi":       trusted != nil && *trusted,
	}, http.StatusCreated)
}

func historyEntries(list []entity.CheckIn) []attendance.HistoryEntry {
	entries := make([]attendance.HistoryEntry, 0, len(list))
	for _, ci := range list {
		t, err := time.Parse("15:04:05", ci.ComeTime)
		if err != nil {
			log.Println("skipping malformed come_time in history:", ci.ComeTime)
			continue
		}
		entries = append(entries, attendance.HistoryEntry{
			ComeHour:         t.Hour(),
			ComeMinute:       t.Minute(),
			ExemptionApplied: ci.ExemptionApplied,
		})
	}
	return entries
}

func (uc Controller) GetList(c *web.Context) error {
	var filter checkin.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	// Default to today's business day, same as Export.
	if filter.Date == nil {
		workDay := uc.now().In(uc.loc).Format("2006-01-02")
		filter.Date = &workDay
	}

	list, count, err := uc.checkin.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.checkin.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Export(c *web.Context) error {
	workDay := uc.now().In(uc.loc).Format("2006-01-02")
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok && date != nil {
		workDay = *date
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	rows, err := uc.checkin.ListByWorkDay(c.Ctx, workDay)
	if err != nil {
		return c.RespondError(err)
	}

	fileName, err := service.ExportCheckIns(rows, workDay)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "exporting check-ins"), http.StatusInternalServerError))
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\"checkins.xlsx\"")
	c.File(fileName)
	return nil
}
