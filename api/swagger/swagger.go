package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Registro Docente API",
        "description": "Roster, attendance, grading and schedule backend for the teacher registry",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Class groups of the acting teacher"},
        {"name": "Roster", "description": "Student filiation records"},
        {"name": "Attendance", "description": "Monthly attendance sheets"},
        {"name": "Grades", "description": "Trimester criteria, scores and the annual overview"},
        {"name": "Progress", "description": "Curricular topic counters"},
        {"name": "Schedule", "description": "Weekly timetable"},
        {"name": "Institution", "description": "Report cover header data"},
        {"name": "Reports", "description": "Printable exports"}
    ],
    "paths": {
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List the teacher's courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Open a new course",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{label}": {
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete a course and its roster",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{label}/students": {
            "get": {
                "tags": ["Courses"],
                "summary": "List students of a course",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{label}/roster": {
            "get": {
                "tags": ["Roster"],
                "summary": "Get the roster of a course",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Roster"],
                "summary": "Replace the roster of a course",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveRosterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{label}/roster/import": {
            "post": {
                "tags": ["Roster"],
                "summary": "Import tab-separated roster rows",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportRosterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{label}/roster/{studentId}": {
            "delete": {
                "tags": ["Roster"],
                "summary": "Delete a student from a roster",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"},
                    {"name": "studentId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/courses/{label}/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Get the attendance sheet of a course month",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "month", "in": "query", "required": true, "type": "integer"},
                    {"name": "trimester", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Attendance"],
                "summary": "Save the staged attendance state of a course month",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveAttendanceRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/courses/{label}/attendance/tallies": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Count present and absent marks per student",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "month", "in": "query", "required": true, "type": "integer"},
                    {"name": "trimester", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{label}/grades": {
            "get": {
                "tags": ["Grades"],
                "summary": "Get the grade sheet of a course trimester",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"},
                    {"name": "trimester", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Grades"],
                "summary": "Save criteria and scores for a course trimester",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveGradesRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "412": {"description": "Sheet was loaded for a different course or trimester"}
                }
            }
        },
        "/courses/{label}/grades/import": {
            "post": {
                "tags": ["Grades"],
                "summary": "Sanitize a pasted score column for one dimension",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{label}/report-cards": {
            "get": {
                "tags": ["Grades"],
                "summary": "Get per-trimester dimension averages for report cards",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{label}/centralizer": {
            "get": {
                "tags": ["Grades"],
                "summary": "Get the annual grade overview of a course",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/progress": {
            "get": {
                "tags": ["Progress"],
                "summary": "Get per-course and global curricular progress",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{label}/progress": {
            "put": {
                "tags": ["Progress"],
                "summary": "Save one trimester's topic counters",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveProgressRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "List the teacher's timetable",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Schedule"],
                "summary": "Create or update a timetable block",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveScheduleEntryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/{id}": {
            "delete": {
                "tags": ["Schedule"],
                "summary": "Delete a timetable block",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/institution": {
            "get": {
                "tags": ["Institution"],
                "summary": "Get the teacher's institutional data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Institution"],
                "summary": "Save the teacher's institutional data",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveInstitutionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{label}/reports/centralizer.pdf": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the annual overview as PDF",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"}
                ],
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/courses/{label}/reports/centralizer.csv": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the annual overview as CSV",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"}
                ],
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/courses/{label}/reports/attendance.csv": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download one month's attendance sheet as CSV",
                "parameters": [
                    {"name": "label", "in": "path", "required": true, "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "month", "in": "query", "required": true, "type": "integer"},
                    {"name": "trimester", "in": "query", "type": "integer"}
                ],
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "SaveRosterRequest": {
            "type": "object",
            "properties": {
                "students": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/RosterRowRequest"}
                }
            }
        },
        "RosterRowRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "full_name": {"type": "string"},
                "gender": {"type": "string"},
                "ci": {"type": "string"},
                "rude": {"type": "string"},
                "birth_date": {"type": "string"},
                "tutor_name": {"type": "string"},
                "tutor_relationship": {"type": "string"},
                "tutor_phone": {"type": "string"},
                "status": {"type": "string"}
            },
            "required": ["full_name"]
        },
        "ImportRosterRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"}
            },
            "required": ["text"]
        },
        "SaveAttendanceRequest": {
            "type": "object",
            "properties": {
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "trimester": {"type": "integer"},
                "enabled_days": {
                    "type": "array",
                    "items": {"type": "integer"}
                },
                "marks": {"type": "object"}
            },
            "required": ["month"]
        },
        "SaveGradesRequest": {
            "type": "object",
            "properties": {
                "trimester": {"type": "integer"},
                "loaded_course_label": {"type": "string"},
                "loaded_trimester": {"type": "integer"},
                "criteria": {"type": "object"},
                "scores": {"type": "object"}
            },
            "required": ["trimester", "loaded_course_label", "loaded_trimester"]
        },
        "SaveProgressRequest": {
            "type": "object",
            "properties": {
                "trimester": {"type": "integer"},
                "planned": {"type": "integer"},
                "developed": {"type": "integer"}
            },
            "required": ["trimester"]
        },
        "SaveScheduleEntryRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "day_of_week": {"type": "integer"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"},
                "course_label": {"type": "string"},
                "subject": {"type": "string"}
            },
            "required": ["day_of_week", "start_time", "end_time", "course_label", "subject"]
        },
        "SaveInstitutionRequest": {
            "type": "object",
            "properties": {
                "department": {"type": "string"},
                "district": {"type": "string"},
                "network": {"type": "string"},
                "sie_code": {"type": "string"},
                "management_year": {"type": "string"},
                "school_unit": {"type": "string"},
                "district_director_name": {"type": "string"},
                "director_name": {"type": "string"},
                "subject": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
