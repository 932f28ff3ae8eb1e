package pdf

// Textos fijos del certificado (albanés). No se interpolan datos del usuario.

const (
	titleLine1 = "CERTIFIKATË"
	titleLine2 = "GARANCIE"

	labelCustomer = "Emër Mbiemër:"
	labelProduct  = "Marka / Produkti:"
	labelWarranty = "Afati i Garancisë:"
	labelInvoice  = "Fatura:"
	labelDate     = "Data:"

	labelAddress = "Adresa:"
	labelPhone   = "Tel:"
	labelEmail   = "Email:"
	labelWebsite = "Web:"

	logoPlaceholder = "LOGO"

	disclaimerText = "Ky certifikatë është i vlefshëm vetëm i shoqëruar me faturën origjinale të blerjes. " +
		"Garancia vlen vetëm për produktin e përshkruar më sipër dhe për periudhën e shënuar, " +
		"duke filluar nga data e faturës. Çdo korrigjim i bërë në këtë dokument e bën atë të pavlefshëm."

	generalTermsTitle = "KUSHTET E PËRGJITHSHME TË GARANCISË"
	exclusionsTitle   = "GARANCIA NUK MBULON"

	attentionCaption = "KUJDES!"
	attentionText    = "Me nënshkrimin e këtij certifikate, blerësi konfirmon se e ka marrë produktin në gjendje " +
		"të rregullt, pa dëmtime të jashtme, se është njohur me mënyrën e përdorimit dhe se i ka lexuar " +
		"dhe pranuar kushtet e garancisë të përshkruara më sipër. Pretendimet pa certifikatë dhe faturë nuk pranohen."
)

// clause paragraf de una lista numerada. lines es la altura prevista en líneas de
// texto con el tamaño de letra de las cláusulas; fija la altura de la fila.
type clause struct {
	text  string
	lines int
}

var generalTerms = []clause{
	{"Garancia mbulon defektet e fabrikës në material dhe punim që shfaqen gjatë përdorimit normal të produktit, brenda afatit të shënuar në këtë certifikatë.", 2},
	{"Riparimi ose zëvendësimi i pjesëve me defekt bëhet pa pagesë në servisin e autorizuar. Vendimi për riparim ose zëvendësim merret nga servisi pas kontrollit teknik.", 2},
	{"Afati i riparimit është deri në 30 ditë nga dita e pranimit të produktit në servis, përveç rasteve kur pjesët duhet të porositen nga prodhuesi.", 2},
	{"Periudha e garancisë nuk zgjatet për shkak të riparimit. Pjesët e zëvendësuara mbeten në pronësi të shitësit.", 1},
	{"Produkti dorëzohet në servis në paketimin origjinal ose në një paketim që garanton transport të sigurt, së bashku me këtë certifikatë dhe faturën.", 2},
	{"Për produktet që kërkojnë instalim, garancia është e vlefshme vetëm nëse instalimi është kryer nga një instalues i autorizuar dhe është shënuar më poshtë.", 2},
	{"Shitësi nuk mban përgjegjësi për humbjen e të dhënave ose për dëme indirekte që rrjedhin nga mosfunksionimi i produktit.", 2},
}

var exclusionTerms = []clause{
	{"Dëmtimet e shkaktuara nga përdorimi i gabuar ose në kundërshtim me udhëzimet e prodhuesit.", 1},
	{"Dëmtimet mekanike, goditjet, rëniet, lagështia, derdhja e lëngjeve ose aksidentet e çdo lloji.", 1},
	{"Luhatjet e tensionit elektrik, rrufeja, zjarri, përmbytjet dhe fatkeqësitë e tjera natyrore.", 1},
	{"Ndërhyrjet, riparimet ose modifikimet e kryera nga persona ose servise të paautorizuara.", 1},
	{"Konsumimi normal i pjesëve si bateritë, llambat, telekomandat, filtrat, gomat dhe aksesorët.", 1},
	{"Produktet me numër serial të dëmtuar, të fshirë ose që nuk përputhet me faturën.", 1},
}
