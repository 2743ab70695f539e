// Package rubric contains the immutable observation rubric templates and
// the pure logic for cloning and validating a rubric in progress.
//
// Templates are never handed out directly: a recording session works on a
// deep copy so edits cannot leak back into the template.
package rubric

import "github.com/example/monitoreo/internal/models"

// Kind selects which rubric template a session records against.
type Kind string

const (
	// KindTeacher is the classroom observation rubric (points 1-4 per aspect).
	KindTeacher Kind = models.MonitorTypeTeacher
	// KindDirector is the school-management rubric (cumple sí/no per aspect).
	KindDirector Kind = models.MonitorTypeDirector
)

// teacherTemplate mirrors the official teacher observation instrument.
// Aspect codes are letters; their order is fixed.
var teacherTemplate = []models.Performance{
	{
		Desempenio: "Involucra activamente a los estudiantes en el proceso de aprendizaje.",
		Aspectos: []models.Aspect{
			{Name: "Acciones del docente para promover el interés y/o la participación de los estudiantes en las actividades de aprendizaje.", Code: "A"},
			{Name: "Proporción de estudiantes involucrados en la sesión.", Code: "B"},
			{Name: "Acciones del docente para favorecer la comprensión del sentido, importancia o utilidad de lo que se aprende.", Code: "C"},
		},
	},
	{
		Desempenio: "Promueve el razonamiento, la creatividad y/o el pensamiento crítico.",
		Aspectos: []models.Aspect{
			{Name: "Actividades e interacciones (entre docente y estudiantes, o entre estudiantes) que promueven efectivamente el razonamiento, la creatividad y/o el pensamiento crítico.", Code: "D"},
		},
	},
	{
		Desempenio: "Evalúa el progreso de los aprendizajes para retroalimentar a los estudiantes y adecuar su enseñanza.",
		Aspectos: []models.Aspect{
			{Name: "Monitoreo que realiza el docente del trabajo de los estudiantes y de sus avances durante la sesión.", Code: "E"},
			{Name: "Calidad de la retroalimentación, que el docente brinda y/o la adaptación de las actividades que realiza en la sesión a partir de las necesidades de aprendizaje identificadas.", Code: "F"},
		},
	},
	{
		Desempenio: "Propicia un ambiente de respeto y proximidad.",
		Aspectos: []models.Aspect{
			{Name: "Trato respetuoso y consideración hacia la perspectiva de los estudiantes.", Code: "G"},
			{Name: "Cordialidad o calidez que transmite el docente.", Code: "H"},
			{Name: "Comprensión y empatía del docente ante las necesidades afectivas o físicas de los estudiantes.", Code: "I"},
		},
	},
	{
		Desempenio: "Regula positivamente el comportamiento de los estudiantes.",
		Aspectos: []models.Aspect{
			{Name: "Tipos de mecanismos que emplea el docente para regular el comportamiento en el aula: positivos, negativos, o de maltrato.", Code: "J"},
			{Name: "Eficacia con que el docente implementa los mecanismos para regular el comportamiento en el aula, lo que se traduce en la mayor o menor continuidad en el desarrollo de la sesión.", Code: "K"},
		},
	},
	{
		Desempenio: "PLANIFICA EL PROCESO DE ENSEÑANZA Y APRENDIZAJE",
		Aspectos: []models.Aspect{
			{Name: "Planificación curricular actualizada y contextualizada para el desarrollo de competencias", Code: "M"},
			{Name: "Propósitos de aprendizaje acorde a las características de los estudiantes (Intereses, necesidades de aprendizaje y contexto) y a la expectativa de aprendizaje planteadas en el currículo nacional.", Code: "N"},
			{Name: "Situaciones significativas desafiantes y alcanzables que despiertan el interés de los estudiantes.", Code: "O"},
			{Name: "Sesiones/actividades que cuentan con estrategias, materiales y/o recursos educativos y diseñadas en concordancia con los productos de aprendizaje de la planificación y los enfoques de áreas curriculares.", Code: "P"},
		},
	},
	{
		Desempenio: "DISEÑA UNA EVALUACIÓN QUE PERMITE VALORAR LOS AVANCES Y LAS DIFICULTADES DE LOS ESTUDIANTES Y APORTAR A LA MEJORA DE LOS APRENDIZAJES",
		Aspectos: []models.Aspect{
			{Name: "Propuesta de evaluación (actividades y/o productos, criterios e instrumentos) coherente con los propósitos de aprendizaje.", Code: "Q"},
			{Name: "Identificación de logros avances, dificultades y recomendaciones para la elaboración de las conclusiones descriptivas.", Code: "R"},
			{Name: "Valoración de resultados de la evaluación para la mejora de los aprendizajes.", Code: "S"},
		},
	},
}

// directorTemplate mirrors the official directivo monitoring instrument.
// Aspect codes are zero-padded numbers; their order is fixed.
var directorTemplate = []models.Performance{
	{
		Desempenio: "Acompañamiento pedagógico y espacios de trabajo colegiado",
		Aspectos: []models.Aspect{
			{Name: "El directivo genera espacios de trabajo colegiado, de manera presencial o virtual con el objetivo de acompañar a los docentes en los procesos de planificación curricular para la mejora de los aprendizajes de los estudiantes.", Code: "01"},
			{Name: "El directivo acompaña y supervisa las reuniones colegiadas y el cumplimiento del plan de trabajo.", Code: "02"},
			{Name: "El directivo promueve estrategias de acompañamiento como grupos de Interaprendizaje (GIA), talleres virtuales, pasantías virtuales o la conformación de Comunidades de Aprendizaje.", Code: "03"},
			{Name: "El directivo promueve la participación de los docentes a los talleres, seminarios, encuentros, GIA y otros eventos pedagógicos virtuales organizados por la REI, la UGEL, DREP MINEDU.", Code: "04"},
			{Name: "El directivo identifica y socializa las buenas prácticas docentes con la comunidad educativa en diferentes espacios de trabajo colegiado.", Code: "05"},
			{Name: "El directivo socializa las asistencias técnicas brindadas a nivel de RED, UGEL, DREP o MINEDU para fortalecer las competencias de los docentes de su institución.", Code: "06"},
			{Name: "El directivo promueve la implementación de proyecto(s) de innovación educativa o Buenas prácticas docentes junto a la comunidad educativa.", Code: "07"},
			{Name: "El directivo cuenta con un diagnóstico de necesidades de formación de los docentes de la IE sobre la enseñanza y aprendizaje virtuales.", Code: "08"},
			{Name: "El directivo cuenta con actividades de fortalecimiento en torno a las necesidades formativas identificadas sobre la enseñanza y aprendizaje.", Code: "09"},
			{Name: "El directivo promueve en la comunidad educativa el uso y aprovechamiento del material educativo, tableta entregada por el MINEDU y su reporte en el SIAGIE.", Code: "10"},
		},
	},
	{
		Desempenio: "Monitoreo de la práctica pedagógica",
		Aspectos: []models.Aspect{
			{Name: "El directivo ha planificado el monitoreo y acompañamiento docente y asegura su cumplimiento.", Code: "11"},
			{Name: "El directivo garantiza que el personal docente realice la mediación y la evaluación para el desarrollo de competencias de los estudiantes.", Code: "12"},
			{Name: "El directivo monitorea y orienta a los docentes en el uso de estrategias y recursos metodológicos, el uso de tiempo y los materiales educativos, priorizando actividades colaborativas.", Code: "13"},
			{Name: "El directivo analiza el cuaderno de campo u otros para identificar los aspectos priorizados para el diálogo reflexivo.", Code: "14"},
			{Name: "El directivo retroalimenta al docente reconociendo sus fortalezas y debilidades a través del diálogo reflexivo.", Code: "15"},
			{Name: "El directivo promueve en el proceso de retroalimentación compromisos de mejora del docente a partir de la reflexión sobre la práctica pedagógica.", Code: "16"},
			{Name: "El directivo brinda material de lectura u otros recursos que permitan fortalecer el desempeño docente.", Code: "17"},
			{Name: "El directivo hace seguimiento a los compromisos asumidos por los docentes de la IE a través de los mecanismos de comunicación que hayan establecido.", Code: "18"},
		},
	},
	{
		Desempenio: "Gestión Escolar",
		Aspectos: []models.Aspect{
			{Name: "El directivo elabora de manera participativa los instrumentos de gestión escolar: PEI, PAT, RI, PCI.", Code: "19"},
			{Name: "El directivo realiza Alianzas estratégicas con Instituciones públicas y/o privadas.", Code: "20"},
			{Name: "El directivo garantiza el cumplimiento de las horas lectivas, calendarización del año escolar, jornada escolar y horarios de trabajo.", Code: "21"},
		},
	},
}

// Template returns a deep copy of the template for the given kind, safe
// for the caller to mutate.
func Template(kind Kind) []models.Performance {
	switch kind {
	case KindDirector:
		return Clone(directorTemplate)
	default:
		return Clone(teacherTemplate)
	}
}

// Clone deep-copies a rubric so edits on the copy never reach the source.
func Clone(performances []models.Performance) []models.Performance {
	out := make([]models.Performance, len(performances))
	for i, p := range performances {
		cp := p
		cp.Aspectos = make([]models.Aspect, len(p.Aspectos))
		for j, a := range p.Aspectos {
			ac := a
			if a.Cumple != nil {
				v := *a.Cumple
				ac.Cumple = &v
			}
			cp.Aspectos[j] = ac
		}
		out[i] = cp
	}
	return out
}
