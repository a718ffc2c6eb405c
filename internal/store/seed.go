package store

import "github.com/edusuite/escolar-api/internal/models"

// Seed installs the built-in dataset. It is applied at startup when no
// persisted snapshot exists or the snapshot fails to parse.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sections = []models.Section{
		{ID: "sec_kin", Name: "Kinder", Color: "pink"},
		{ID: "sec_pri", Name: "Primaria", Color: "blue"},
		{ID: "sec_sec", Name: "Secundaria", Color: "indigo"},
		{ID: "sec_bac", Name: "Bachillerato", Color: "emerald"},
	}

	s.teachers = []models.Teacher{
		{ID: "t1", Name: "Dr. Roberto Sánchez", Email: "roberto.s@edu.com", Subject: "Matemáticas", SectionIDs: []string{"sec_sec", "sec_bac"}},
		{ID: "t2", Name: "Mtra. Elena Gómez", Email: "elena.g@edu.com", Subject: "Español", SectionIDs: []string{"sec_pri"}},
		{ID: "t3", Name: "Ing. Carlos Ruiz", Email: "carlos.r@edu.com", Subject: "Ciencias", SectionIDs: []string{"sec_sec"}},
		{ID: "t4", Name: "Lic. Martha Sosa", Email: "martha.s@edu.com", Subject: "Educación Inicial", SectionIDs: []string{"sec_kin"}},
	}

	s.groups = []models.Group{
		{
			ID: "g1", Name: "3º Kinder - A", TeacherID: "t4", SectionID: "sec_kin", StudentCount: 15,
			Schedule: []models.ScheduleItem{
				{ID: "s1", Day: "Lunes", StartTime: "09:00", EndTime: "11:00", Subject: "Psicomotricidad", Classroom: "Salón Nube", TeacherID: "t4", GroupID: "g1"},
			},
		},
		{
			ID: "g2", Name: "6º Primaria - B", TeacherID: "t2", SectionID: "sec_pri", StudentCount: 22,
			Schedule: []models.ScheduleItem{
				{ID: "s2", Day: "Martes", StartTime: "08:00", EndTime: "10:00", Subject: "Español", Classroom: "Aula 204", TeacherID: "t2", GroupID: "g2"},
			},
		},
		{
			ID: "g3", Name: "2º Secundaria - C", TeacherID: "t1", SectionID: "sec_sec", StudentCount: 28,
			Schedule: []models.ScheduleItem{
				{ID: "s3", Day: "Miércoles", StartTime: "10:00", EndTime: "12:00", Subject: "Álgebra", Classroom: "Laboratorio A", TeacherID: "t1", GroupID: "g3"},
			},
		},
	}

	s.students = []models.Student{
		{ID: "st1", Name: "Ana Martínez", Email: "ana@mail.com", EnrollmentID: "K-001", GroupID: "g1", SectionID: "sec_kin", Status: models.StudentStatusActive, AttendanceCount: 12},
		{ID: "st2", Name: "Juan Pérez", Email: "juan@mail.com", EnrollmentID: "P-002", GroupID: "g2", SectionID: "sec_pri", Status: models.StudentStatusActive, AttendanceCount: 10},
		{ID: "st3", Name: "Sofía Lara", Email: "sofia@mail.com", EnrollmentID: "S-003", GroupID: "g3", SectionID: "sec_sec", Status: models.StudentStatusActive, AttendanceCount: 15},
	}

	s.attendance = nil
	s.revision++
}
