package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"wildwaste/internal/core"
	"wildwaste/internal/http/handler"
	"wildwaste/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("WasteHandler", func() {
	var (
		wh            *handler.WasteHandler
		fakeService   *fake.WasteService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.WasteService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		wh = handler.NewWasteHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleIndex", func() {
		It("should return the greeting", func() {
			req = httptest.NewRequest("GET", "/", nil)
			wh.HandleIndex(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("Welcome to the WildWaste Backend API!"))
		})
	})

	Describe("HandleRegister", func() {
		var response handler.Response

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"pw1"}`)
			req = httptest.NewRequest("POST", "/register", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.RegisterReturns(core.UserRecord{ID: 1, Username: "alice"}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleRegister(w, req)
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		})

		When("registration succeeds", func() {
			It("should return 201 with a success envelope", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(response.Status).To(Equal("success"))
				Expect(response.Message).To(Equal("User registered successfully"))

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg.Username).To(Equal("alice"))
				Expect(msg.Password).To(Equal("pw1"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400 and not reach the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Status).To(Equal("error"))
				Expect(response.Message).To(Equal("Missing username or password"))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, core.ErrUsernameTaken)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(response.Status).To(Equal("error"))
				Expect(response.Message).To(Equal("Username already exists"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.UserRecord{}, fakeErr)
			})

			It("should return 500 with the failure detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(response.Status).To(Equal("error"))
				Expect(response.Message).To(ContainSubstring("fake-error"))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"pw1"}`)
			req = httptest.NewRequest("POST", "/login", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.LoginReturns(core.UserRecord{ID: 1, Username: "alice"}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			It("should echo the identity without the password hash", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["status"]).To(Equal("success"))
				Expect(response["message"]).To(Equal("Login successful"))
				Expect(response["user_id"]).To(BeEquivalentTo(1))
				Expect(response["username"]).To(Equal("alice"))
				Expect(response).NotTo(HaveKey("password_hash"))
			})
		})

		When("credentials are invalid", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.UserRecord{}, core.ErrInvalidCredentials)
			})

			It("should return 401 with the generic message", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))

				var response handler.Response
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response.Status).To(Equal("error"))
				Expect(response.Message).To(Equal("Invalid username or password"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.LoginCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.UserRecord{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleSubmitReport", func() {
		var response handler.Response

		BeforeEach(func() {
			body := strings.NewReader(`{"user_id":1,"latitude":1.0,"longitude":2.0,"trash_type":"plastic","quantity":3}`)
			req = httptest.NewRequest("POST", "/reports", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.SubmitReportReturns(core.ReportRecord{ID: 1, UserID: 1, TrashType: "plastic"}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleSubmitReport(w, req)
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		})

		When("submission succeeds", func() {
			It("should return 201", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(response.Status).To(Equal("success"))
				Expect(response.Message).To(Equal("Report submitted successfully"))

				Expect(fakeService.SubmitReportCallCount()).To(Equal(1))
				_, msg := fakeService.SubmitReportArgsForCall(0)
				Expect(msg.UserID).To(Equal(uint(1)))
				Expect(msg.Latitude).To(Equal(1.0))
				Expect(msg.Longitude).To(Equal(2.0))
				Expect(msg.TrashType).To(Equal("plastic"))
				Expect(msg.Quantity).To(Equal(3.0))
				Expect(msg.ImageBase64).To(BeNil())
				Expect(msg.Notes).To(BeNil())
			})
		})

		When("required fields are missing", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400 and not reach the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Message).To(Equal("Missing required report data"))
				Expect(fakeService.SubmitReportCallCount()).To(Equal(0))
			})
		})

		When("the reporting user does not exist", func() {
			BeforeEach(func() {
				fakeService.SubmitReportReturns(core.ReportRecord{}, core.ErrReporterNotFound)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(response.Message).To(Equal("Reporting user does not exist"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.SubmitReportReturns(core.ReportRecord{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetReports", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/reports", nil)
		})

		JustBeforeEach(func() {
			wh.HandleGetReports(w, req)
		})

		When("reports exist", func() {
			BeforeEach(func() {
				fakeService.ListReportsReturns([]core.ReportRecord{
					{ID: 1, UserID: 1, Username: "alice", TrashType: "plastic", Quantity: 3},
				}, nil)
			})

			It("should return them with the reporter's username", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"username":"alice"`))
				Expect(w.Body.String()).To(ContainSubstring(`"status":"success"`))
			})
		})

		When("no reports exist", func() {
			BeforeEach(func() {
				fakeService.ListReportsReturns([]core.ReportRecord{}, nil)
			})

			It("should return an empty array, not an error", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"data":[]`))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListReportsReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetUserReports", func() {
		JustBeforeEach(func() {
			wh.HandleGetUserReports(w, req)
		})

		When("the user id is valid", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/reports/user/5", nil)
				req.SetPathValue("userID", "5")
				fakeService.ListUserReportsReturns([]core.ReportRecord{}, nil)
			})

			It("should return 200 with an empty array for a user with no reports", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"data":[]`))

				Expect(fakeService.ListUserReportsCallCount()).To(Equal(1))
				_, userID := fakeService.ListUserReportsArgsForCall(0)
				Expect(userID).To(Equal(uint(5)))
			})
		})

		When("the user id is not an integer", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/reports/user/abc", nil)
				req.SetPathValue("userID", "abc")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.ListUserReportsCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/reports/user/5", nil)
				req.SetPathValue("userID", "5")
				fakeService.ListUserReportsReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleDeleteReport", func() {
		var response handler.Response

		JustBeforeEach(func() {
			wh.HandleDeleteReport(w, req)
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		})

		When("the report exists", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("DELETE", "/reports/1", nil)
				req.SetPathValue("reportID", "1")
				fakeService.RemoveReportReturns(nil)
			})

			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(response.Status).To(Equal("success"))
				Expect(response.Message).To(Equal("Report deleted successfully"))

				Expect(fakeService.RemoveReportCallCount()).To(Equal(1))
				_, reportID := fakeService.RemoveReportArgsForCall(0)
				Expect(reportID).To(Equal(uint(1)))
			})
		})

		When("the report does not exist", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("DELETE", "/reports/1", nil)
				req.SetPathValue("reportID", "1")
				fakeService.RemoveReportReturns(core.ErrReportNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(response.Message).To(Equal("Report not found"))
			})
		})

		When("the report was already deleted by a concurrent caller", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("DELETE", "/reports/1", nil)
				req.SetPathValue("reportID", "1")
				fakeService.RemoveReportReturns(core.ErrReportGone)
			})

			It("should return 404 with the distinct message", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(response.Message).To(Equal("Report not found or already deleted"))
			})
		})

		When("the report id is not an integer", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("DELETE", "/reports/abc", nil)
				req.SetPathValue("reportID", "abc")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RemoveReportCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("DELETE", "/reports/1", nil)
				req.SetPathValue("reportID", "1")
				fakeService.RemoveReportReturns(fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
