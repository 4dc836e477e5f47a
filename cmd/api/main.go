package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/ems-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/email"
	announcementService "github.com/cmlabs-hris/ems-backend-go/internal/service/announcement"
	attendanceService "github.com/cmlabs-hris/ems-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/ems-backend-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/ems-backend-go/internal/service/employee"
	issueService "github.com/cmlabs-hris/ems-backend-go/internal/service/issue"
	leaveService "github.com/cmlabs-hris/ems-backend-go/internal/service/leave"
	taskService "github.com/cmlabs-hris/ems-backend-go/internal/service/task"
	workHoursService "github.com/cmlabs-hris/ems-backend-go/internal/service/workhours"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dataStore, err := store.Open(cfg.Store.DataFile)
	if err != nil {
		log.Fatal("Failed to open data store:", err)
	}

	emailService := email.NewService(cfg.Email)

	authService, err := serviceAuth.NewAuthService()
	if err != nil {
		log.Fatal("Failed to initialize auth service:", err)
	}
	employeeSvc := employeeService.NewEmployeeService(dataStore)
	attendanceSvc := attendanceService.NewAttendanceService(dataStore)
	taskSvc := taskService.NewTaskService(dataStore)
	leaveSvc := leaveService.NewLeaveService(dataStore, emailService)
	announcementSvc := announcementService.NewAnnouncementService(dataStore, emailService)
	issueSvc := issueService.NewIssueService(dataStore, emailService)
	workHoursSvc := workHoursService.NewWorkHoursService(dataStore)

	authHandler := appHTTP.NewAuthHandler(authService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	announcementHandler := appHTTP.NewAnnouncementHandler(announcementSvc)
	issueHandler := appHTTP.NewIssueHandler(issueSvc)
	workHoursHandler := appHTTP.NewWorkHoursHandler(workHoursSvc)
	emailHandler := appHTTP.NewEmailHandler(emailService)

	router := appHTTP.NewRouter(
		cfg,
		authHandler,
		employeeHandler,
		attendanceHandler,
		taskHandler,
		leaveHandler,
		announcementHandler,
		issueHandler,
		workHoursHandler,
		emailHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
