package resume

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Filename is the fixed attachment name for every download.
const Filename = "Sharandeep_Reddy_Resume.pdf"

// Generator renders the resume. The layout and content are static; only the
// generated-on footer varies.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Build() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(0x1e, 0x40, 0xaf)
	pdf.CellFormat(0, 12, "Adla Sharandeep Reddy", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range []string{
		"AI/ML Engineer & Data Scientist",
		"Buffalo, NY, USA | +1 (716) 750-9326",
		"sharanreddy.adla@gmail.com | sharande@buffalo.edu",
		"linkedin.com/in/sharandeep-reddy | github.com/sharan-555",
	} {
		pdf.CellFormat(0, 5.5, line, "", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	g.sectionHeader(pdf, "Professional Summary")
	g.body(pdf, "Passionate AI/ML Engineer with expertise in deep learning, NLP, and predictive modeling. "+
		"Currently pursuing Master's in Data Science at University at Buffalo with hands-on "+
		"experience at AWS and Afame Technologies. Proven track record of improving model "+
		"accuracy by 20% and optimizing inference speed by 30%.")

	g.sectionHeader(pdf, "Education")
	g.subSection(pdf, "Master's in Data Science (MPS)")
	g.body(pdf, "University at Buffalo, NY, USA | Aug 2024 - Present | GPA: 3.704")
	g.subSection(pdf, "B.Tech in Electronics and Computer Engineering")
	g.body(pdf, "Sreenidhi Institute of Science and Technology, Hyderabad | 2020 - 2024 | CGPA: 8.3")

	g.sectionHeader(pdf, "Professional Experience")
	g.subSection(pdf, "Data Scientist Intern | Afame Technologies")
	g.body(pdf, "Jan 2024 - Mar 2024")
	g.bullets(pdf,
		"Improved ML model accuracy by 20% through advanced feature engineering",
		"Optimized inference speed by 30% using efficient algorithms",
		"Applied hyperparameter tuning and enhanced big data scalability",
		"Collaborated with cross-functional teams on production deployments",
	)
	g.subSection(pdf, "AI Engineer Intern | Amazon Web Services (AWS)")
	g.body(pdf, "Dec 2022 - Feb 2023")
	g.bullets(pdf,
		"Built and fine-tuned NLP models using Hugging Face transformers",
		"Integrated OpenAI API for enhanced functionality and user experience",
		"Deployed AI workflows in cloud environment with scalability focus",
		"Collaborated with cross-functional teams on enterprise solutions",
	)

	g.sectionHeader(pdf, "Key Projects")
	g.subSection(pdf, "Heart Disease Prediction Using ML & XAI")
	g.bullets(pdf,
		"Published at ICOTET 2024 conference",
		"Developed explainable AI model for medical diagnosis",
		"Technologies: Python, Scikit-learn, XAI, Pandas, Matplotlib",
	)
	g.subSection(pdf, "Handwritten Digit & Facial Recognition")
	g.bullets(pdf,
		"CNN achieved 98% accuracy, outperforming DNN by 12%",
		"Comparative analysis of deep learning architectures",
		"Technologies: TensorFlow, Keras, OpenCV, CNN, DNN",
	)
	g.subSection(pdf, "SQL-Based Swimmer Club Management System")
	g.bullets(pdf,
		"Managed 500+ members and 100+ inventory items",
		"Implemented normalized SQL schema and efficient queries",
		"Technologies: SQL, DBMS, Python, Streamlit, PostgreSQL",
	)

	g.sectionHeader(pdf, "Technical Skills")
	g.skillsTable(pdf, [][2]string{
		{"Languages:", "Python, SQL, JavaScript, HTML/CSS"},
		{"AI/ML:", "Scikit-learn, TensorFlow, Keras, Transformers, NLP, XAI"},
		{"Frameworks:", "React.js, FastAPI, Streamlit, Gradio"},
		{"Databases:", "PostgreSQL, MongoDB, MySQL"},
		{"Cloud/Deploy:", "AWS, GitHub, Netlify, Heroku, Hugging Face"},
		{"Visualization:", "Matplotlib, Seaborn, Plotly, D3.js"},
	})

	g.sectionHeader(pdf, "Certifications")
	g.bullets(pdf,
		"Cognizant AI Virtual Experience (2023)",
		"Microsoft AI Skills Challenge (2023)",
		"IBM ML with Python Level 1 (2022)",
	)

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(0x6b, 0x72, 0x80)
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated on %s | Latest version available at portfolio website",
		time.Now().Format("January 2, 2006")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetTextColor(0x37, 0x41, 0x51)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1.5)
}

func (g *Generator) subSection(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(1.5)
	pdf.SetFont("Helvetica", "B", 11.5)
	pdf.SetTextColor(0x1f, 0x29, 0x37)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
}

func (g *Generator) body(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 10.5)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 5, text, "", "L", false)
}

func (g *Generator) bullets(pdf *gofpdf.Fpdf, items ...string) {
	pdf.SetFont("Helvetica", "", 10.5)
	pdf.SetTextColor(0, 0, 0)
	for _, it := range items {
		pdf.MultiCell(0, 5, "- "+it, "", "L", false)
	}
}

func (g *Generator) skillsTable(pdf *gofpdf.Fpdf, rows [][2]string) {
	for i, row := range rows {
		if i%2 == 1 {
			pdf.SetFillColor(0xf9, 0xfa, 0xfb)
		} else {
			pdf.SetFillColor(0xff, 0xff, 0xff)
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(32, 6, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, row[1], "1", 1, "L", true, 0, "")
	}
}
