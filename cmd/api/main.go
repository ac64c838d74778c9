package main

import (
	"fmt"
	"net/http"

	"github.com/peoplehub/hrm-backend-go/internal/config"
	appHTTP "github.com/peoplehub/hrm-backend-go/internal/handler/http"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/database"
	"github.com/peoplehub/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplehub/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplehub/hrm-backend-go/internal/service/attendance"
	dashboardService "github.com/peoplehub/hrm-backend-go/internal/service/dashboard"
	leaveService "github.com/peoplehub/hrm-backend-go/internal/service/leave"
	payrollService "github.com/peoplehub/hrm-backend-go/internal/service/payroll"
	profileService "github.com/peoplehub/hrm-backend-go/internal/service/profile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	userRoleRepo := postgresql.NewUserRoleRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, profileRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, leaveRequestRepo, attendanceRepo)
	profileSvc := profileService.NewProfileService(profileRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo)
	dashboardSvc := dashboardService.NewDashboardService(profileRepo, leaveRequestRepo, attendanceRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(jwtService, attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(jwtService, leaveSvc)
	profileHandler := appHTTP.NewProfileHandler(jwtService, profileSvc)
	payrollHandler := appHTTP.NewPayrollHandler(jwtService, payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(jwtService, dashboardSvc)

	router := appHTTP.NewRouter(
		jwtService,
		userRoleRepo,
		attendanceHandler,
		leaveHandler,
		profileHandler,
		payrollHandler,
		dashboardHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
