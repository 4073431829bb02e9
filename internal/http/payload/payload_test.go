package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"wildwaste/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var (
		dv  payload.DecodeValidator
		req *http.Request
		err error
	)

	BeforeEach(func() {
		dv = payload.DecodeValidator{}
	})

	Describe("RegisterRequest", func() {
		var register payload.RegisterRequest

		BeforeEach(func() {
			register = payload.RegisterRequest{}
		})

		JustBeforeEach(func() {
			err = dv.DecodeJSONPayload(req, &register)
		})

		When("both fields are present", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/register", strings.NewReader(`{"username":"alice","password":"pw1"}`))
			})

			It("should decode without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(register.Username).To(Equal("alice"))
				Expect(register.Password).To(Equal("pw1"))
			})
		})

		When("the password is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/register", strings.NewReader(`{"username":"alice"}`))
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
				Expect(register.Password).To(BeEmpty())
			})
		})

		When("the body is not valid json", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/register", strings.NewReader(`not-json`))
			})

			It("should fail decoding", func() {
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})
	})

	Describe("ReportRequest", func() {
		var report payload.ReportRequest

		BeforeEach(func() {
			report = payload.ReportRequest{}
		})

		JustBeforeEach(func() {
			err = dv.DecodeJSONPayload(req, &report)
		})

		When("all required fields are present", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/reports", strings.NewReader(
					`{"user_id":1,"latitude":1.0,"longitude":2.0,"trash_type":"plastic","quantity":3}`))
			})

			It("should decode with the optional fields absent", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(*report.UserID).To(Equal(uint(1)))
				Expect(report.ImageBase64).To(BeNil())
				Expect(report.Notes).To(BeNil())

				msg := report.ToMessage()
				Expect(msg.TrashType).To(Equal("plastic"))
				Expect(msg.Quantity).To(Equal(3.0))
			})
		})

		When("a zero coordinate is supplied", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/reports", strings.NewReader(
					`{"user_id":1,"latitude":0,"longitude":0,"trash_type":"plastic","quantity":3}`))
			})

			It("should not treat zero as missing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(*report.Latitude).To(Equal(0.0))
			})
		})

		When("a required field is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/reports", strings.NewReader(
					`{"user_id":1,"latitude":1.0,"longitude":2.0,"trash_type":"plastic"}`))
			})

			It("should fail validation", func() {
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
			})
		})

		When("the optional fields are supplied", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/reports", strings.NewReader(
					`{"user_id":1,"latitude":1.0,"longitude":2.0,"trash_type":"plastic","quantity":3,"image_base64":"aGVsbG8=","notes":"by the river"}`))
			})

			It("should carry them through", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(*report.ImageBase64).To(Equal("aGVsbG8="))
				Expect(*report.Notes).To(Equal("by the river"))
			})
		})
	})
})
