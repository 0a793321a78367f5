package models

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeFile     FieldType = "file"
)

var FieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeEmail,
	FieldTypeTel,
	FieldTypeNumber,
	FieldTypeDate,
	FieldTypeDatetime,
	FieldTypeTextarea,
	FieldTypeSelect,
	FieldTypeRadio,
	FieldTypeCheckbox,
	FieldTypeFile,
}

// HasOptions варианты ответа нужны только для полей с выбором
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox:
		return true
	}
	return false
}

func (t FieldType) IsDate() bool {
	return t == FieldTypeDate || t == FieldTypeDatetime
}

const (
	SubsectionBasicInformation      = "Basic Information"
	SubsectionPersonalDetails       = "Personal Details"
	SubsectionContactPosition       = "Contact & Position"
	SubsectionSpouseDetails         = "Spouse's Details"
	SubsectionAcademicQualification = "Academic Qualifications"
	SubsectionAdditionalInformation = "Additional Information"
	SubsectionDocuments             = "Documents"
	SubsectionOtherInformation      = "Other Information"
)

// SubsectionPriority порядок вывода известных подразделов в карточке кандидата
var SubsectionPriority = []string{
	SubsectionBasicInformation,
	SubsectionPersonalDetails,
	SubsectionContactPosition,
	SubsectionSpouseDetails,
	SubsectionAcademicQualification,
	SubsectionAdditionalInformation,
	SubsectionDocuments,
	SubsectionOtherInformation,
}

var subsectionIcons = map[string]string{
	SubsectionBasicInformation:      "fas fa-info-circle",
	SubsectionPersonalDetails:       "fas fa-user",
	SubsectionContactPosition:       "fas fa-briefcase",
	SubsectionSpouseDetails:         "fas fa-heart",
	SubsectionAcademicQualification: "fas fa-graduation-cap",
	SubsectionAdditionalInformation: "fas fa-plus-circle",
	SubsectionDocuments:             "fas fa-file-alt",
	SubsectionOtherInformation:      "fas fa-ellipsis-h",
}

func SubsectionIcon(name string) string {
	if icon, ok := subsectionIcons[name]; ok {
		return icon
	}
	return "fas fa-folder-open"
}

const DefaultSectionIcon = "folder"

var SectionIcons = []string{"folder", "user", "briefcase", "graduation-cap", "phone", "file-alt", "cog", "star"}

// SectionIconClass "user" -> "fas fa-user"
func SectionIconClass(icon string) string {
	if icon == "" {
		icon = DefaultSectionIcon
	}
	return "fas fa-" + icon
}

const (
	KeyID                  = "id"
	KeySubmissionTimestamp = "submission_timestamp"
	KeyStatus              = "Status"
	KeyResumePath          = "resume_path"
	KeyEmail               = "email"
	KeyName                = "name"
)
