package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/config"
	appHTTP "github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/attendance"
	leaveService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/leave"
	payslipService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/payslip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "peoplecore"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	clockEventRepo := postgresql.NewClockEventRepository(db)
	shiftRosterRepo := postgresql.NewShiftRosterRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(employeeRepo, clockEventRepo, shiftRosterRepo, leaveRequestRepo)
	leaveSvc := leaveService.NewLeaveService(leaveBalanceRepo, leaveRequestRepo, employeeRepo)
	payslipSvc := payslipService.NewPayslipService(
		db,
		payslipRepo,
		employeeRepo,
		attendanceSvc,
		auditLogRepo,
		logger,
		cfg.Company.Name,
		cfg.Company.Address,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)

	router := appHTTP.NewRouter(logger, attendanceHandler, leaveHandler, payslipHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
