package payslip

// Designations lists every designation a payslip may carry.
var Designations = []string{
	"Software Engineer",
	"Senior Software Engineer",
	"Lead Engineer",
	"Principal Engineer",
	"Software Architect",
	"QA Engineer",
	"Senior QA Engineer",
	"Test Lead",
	"DevOps Engineer",
	"Senior DevOps Engineer",
	"Data Engineer",
	"Data Analyst",
	"Data Scientist",
	"UI/UX Designer",
	"Graphic Designer",
	"Product Manager",
	"Project Manager",
	"Program Manager",
	"Business Analyst",
	"Scrum Master",
	"HR Executive",
	"HR Manager",
	"Recruiter",
	"Finance Executive",
	"Accounts Manager",
	"Operations Manager",
}

var OfficeLocations = []string{"Hyderabad", "Bangalore", "Pune", "Chennai", "Delhi"}

var EmploymentTypes = []string{"Permanent", "Contract", "Temporary", "Intern"}

// monthNames in calendar order; month_year must carry the capitalized word.
var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
