package dto

import (
	"mime/multipart"
)

// AdmissionForm carries the raw admission submission. Fields arrive as
// optional strings (a missing form field is an empty string, not an error);
// the service validates them in a fixed order.
type AdmissionForm struct {
	StudentName         string `form:"studentName"`
	CNIC                string `form:"cnic"`
	DateOfBirth         string `form:"dob"`
	Gender              string `form:"gender"`
	Age                 string `form:"age"`
	Phone               string `form:"phone"`
	Address             string `form:"address"`
	StudentOccupation   string `form:"studentOccupation"`
	ParentName          string `form:"parentName"`
	ParentCNIC          string `form:"parentCnic"`
	ParentPhone         string `form:"parentPhone"`
	ParentOccupation    string `form:"parentOccupation"`
	NumSiblings         string `form:"numSiblings"`
	SiblingDisability   string `form:"siblingDisability"`
	GuardianName        string `form:"guardianName"`
	GuardianPhone       string `form:"guardianPhone"`
	DisabilityName      string `form:"disabilityName"`
	MedicalHistory      string `form:"medicalHistory"`
	RegularMedication   string `form:"regularMedication"`
	AssistiveDevice     string `form:"assistiveDevice"`
	Epilepsy            string `form:"epilepsy"`
	DrugAddiction       string `form:"drugAddiction"`
	Assistant           string `form:"assistant"`
	CommunicableDisease string `form:"communicableDisease"`
	EducationLevel      string `form:"educationLevel"`
	Course              string `form:"course"`
	AdmissionType       string `form:"admissionType"`
	DurationStay        string `form:"durationStay"`
	PickDrop            string `form:"pickDrop"`
	Affidavit           string `form:"affidavit"`
	AffidavitAgreement  string `form:"affidavitAgreement"`
	AdmissionDate       string `form:"admissionDate"`

	// File parts, extracted from the multipart form by the controller.
	Photo                 *multipart.FileHeader `form:"-"`
	DisabilityCertificate *multipart.FileHeader `form:"-"`
	Documents             []*multipart.FileHeader `form:"-"`
}

// SubmitAdmissionResponse confirms a stored application.
type SubmitAdmissionResponse struct {
	ID int64 `json:"id"`
}

// DeleteAdmissionsRequest is the bulk-delete payload.
type DeleteAdmissionsRequest struct {
	IDs []int64 `json:"ids"`
}
