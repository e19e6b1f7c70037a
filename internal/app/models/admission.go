package models

import (
	"time"
)

// Admission type values
const (
	AdmissionTypeDayScholar    = "Day Scholar"
	AdmissionTypeHostelBoarder = "Hostel Boarder"
)

// Admission is one submitted application record. Immutable after creation
// except for admin deletion.
type Admission struct {
	ID                        int64     `json:"id" db:"id"`
	StudentName               string    `json:"studentName" db:"student_name"`
	CNIC                      string    `json:"cnic" db:"cnic"`
	DateOfBirth               time.Time `json:"dob" db:"dob"`
	Gender                    string    `json:"gender" db:"gender"`
	Age                       int       `json:"age" db:"age"`
	Phone                     string    `json:"phone" db:"phone"`
	Address                   string    `json:"address" db:"address"`
	StudentOccupation         *string   `json:"studentOccupation,omitempty" db:"student_occupation"`
	ParentName                string    `json:"parentName" db:"parent_name"`
	ParentCNIC                string    `json:"parentCnic" db:"parent_cnic"`
	ParentPhone               string    `json:"parentPhone" db:"parent_phone"`
	ParentOccupation          string    `json:"parentOccupation" db:"parent_occupation"`
	NumSiblings               int       `json:"numSiblings" db:"num_siblings"`
	SiblingDisability         *string   `json:"siblingDisability,omitempty" db:"sibling_disability"`
	GuardianName              string    `json:"guardianName" db:"guardian_name"`
	GuardianPhone             string    `json:"guardianPhone" db:"guardian_phone"`
	DisabilityCertificatePath *string   `json:"disabilityCertificate,omitempty" db:"disability_certificate_path"`
	DisabilityName            string    `json:"disabilityName" db:"disability_name"`
	MedicalHistory            *string   `json:"medicalHistory,omitempty" db:"medical_history"`
	RegularMedication         *string   `json:"regularMedication,omitempty" db:"regular_medication"`
	AssistiveDevice           *string   `json:"assistiveDevice,omitempty" db:"assistive_device"`
	Epilepsy                  *string   `json:"epilepsy,omitempty" db:"epilepsy"`
	DrugAddiction             *string   `json:"drugAddiction,omitempty" db:"drug_addiction"`
	Assistant                 *string   `json:"assistant,omitempty" db:"assistant"`
	CommunicableDisease       *string   `json:"communicableDisease,omitempty" db:"communicable_disease"`
	EducationLevel            string    `json:"educationLevel" db:"education_level"`
	Course                    string    `json:"course" db:"course"`
	AdmissionType             string    `json:"admissionType" db:"admission_type"`
	DurationStay              *int      `json:"durationStay,omitempty" db:"duration_stay"`
	PickDrop                  *string   `json:"pickDrop,omitempty" db:"pick_drop"`
	Affidavit                 string    `json:"affidavit" db:"affidavit"`
	AdmissionDate             time.Time `json:"admissionDate" db:"admission_date"`
	PhotoPath                 *string   `json:"photo,omitempty" db:"photo_path"`
	CreatedAt                 time.Time `json:"createdAt" db:"created_at"`

	// DocumentPaths come from the admission_documents child table.
	DocumentPaths []string `json:"documents"`
}

// AdmissionDocument is one uploaded document of an application.
type AdmissionDocument struct {
	ID          int64  `json:"id" db:"id"`
	AdmissionID int64  `json:"admissionId" db:"admission_id"`
	Path        string `json:"path" db:"path"`
}
