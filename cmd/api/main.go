package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/nexhr/hrms-backend-go/internal/config"
	appHTTP "github.com/nexhr/hrms-backend-go/internal/handler/http"
	"github.com/nexhr/hrms-backend-go/internal/pkg/database"
	"github.com/nexhr/hrms-backend-go/internal/pkg/jwt"
	"github.com/nexhr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nexhr/hrms-backend-go/internal/service/attendance"
	authService "github.com/nexhr/hrms-backend-go/internal/service/auth"
	bellService "github.com/nexhr/hrms-backend-go/internal/service/bell"
	employeeService "github.com/nexhr/hrms-backend-go/internal/service/employee"
	holidayService "github.com/nexhr/hrms-backend-go/internal/service/holiday"
	leaveService "github.com/nexhr/hrms-backend-go/internal/service/leave"
	salaryService "github.com/nexhr/hrms-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "nexhr-hrms"),
	)

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	bellRepo := postgresql.NewBellRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	bellSvc := bellService.NewBellService(bellRepo)
	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, auditRepo, logger)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, auditRepo, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, bellSvc, logger)
	attendanceSvc := attendanceService.NewAttendanceService(
		punchRepo,
		policyRepo,
		employeeRepo,
		holidayRepo,
		leaveRepo,
		auditRepo,
		cfg.Location(),
		logger,
	)
	salarySvc := salaryService.NewSalaryService(db, salaryRepo, policyRepo, employeeRepo, attendanceSvc, bellSvc, logger)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewHolidayHandler(holidaySvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewSalaryHandler(salarySvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewBellHandler(bellSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
