package knowledge

func defaultTables() Tables {
	return Tables{
		Conditions: []Condition{
			{
				ID:       "hypertension",
				Symptoms: []string{"headache", "shortness of breath", "nosebleeds", "dizziness", "chest pain", "high blood pressure", "vision problems"},
				Medications: []Medication{
					{"Lisinopril", 0.85},
					{"Amlodipine", 0.80},
					{"Losartan", 0.82},
					{"Hydrochlorothiazide", 0.75},
					{"Metoprolol", 0.78},
				},
				Lifestyle: []string{
					"Reduce sodium intake to less than 2,300mg per day",
					"Regular aerobic exercise for 30 minutes most days",
					"Maintain healthy weight",
					"DASH diet rich in fruits, vegetables, and low-fat dairy",
					"Limit alcohol consumption",
				},
				Monitoring: []string{
					"Regular blood pressure checks",
					"Monitor for medication side effects",
					"Periodic kidney function tests",
					"Regular physician follow-up",
					"Home blood pressure monitoring if recommended",
				},
			},
			{
				ID:       "diabetes",
				Symptoms: []string{"frequent urination", "increased thirst", "hunger", "fatigue", "blurred vision", "slow-healing sores", "weight loss"},
				Medications: []Medication{
					{"Metformin", 0.88},
					{"Glyburide", 0.76},
					{"Glipizide", 0.75},
					{"Sitagliptin", 0.82},
					{"Empagliflozin", 0.84},
				},
				Lifestyle: []string{
					"Regular blood glucose monitoring",
					"Balanced diet with controlled carbohydrate intake",
					"Regular physical activity for 150 minutes per week",
					"Maintain healthy weight",
					"Avoid smoking",
				},
				Monitoring: []string{
					"Regular blood glucose monitoring",
					"HbA1c testing every 3-6 months",
					"Annual eye examination",
					"Regular foot examinations",
					"Kidney function monitoring",
				},
			},
			{
				ID:       "depression",
				Symptoms: []string{"persistent sadness", "loss of interest", "changes in sleep", "fatigue", "anxiety", "reduced appetite", "trouble concentrating"},
				Medications: []Medication{
					{"Sertraline", 0.83},
					{"Fluoxetine", 0.81},
					{"Escitalopram", 0.84},
					{"Venlafaxine", 0.79},
					{"Bupropion", 0.82},
				},
				Lifestyle: []string{
					"Regular physical exercise",
					"Maintain regular sleep schedule",
					"Consider psychotherapy or counseling",
					"Social engagement and support networks",
					"Mindfulness and stress reduction techniques",
				},
				Monitoring: []string{
					"Regular follow-up with healthcare provider",
					"Monitor for side effects of medication",
					"Track mood changes",
					"Watch for warning signs of suicidal thoughts",
					"Evaluate effectiveness of treatment",
				},
			},
			{
				ID:       "anxiety",
				Symptoms: []string{"excessive worry", "restlessness", "fatigue", "difficulty concentrating", "irritability", "muscle tension", "sleep problems"},
				Medications: []Medication{
					{"Buspirone", 0.78},
					{"Lorazepam", 0.82},
					{"Alprazolam", 0.85},
					{"Escitalopram", 0.80},
					{"Venlafaxine", 0.77},
				},
				Lifestyle: []string{
					"Breathing exercises and meditation",
					"Regular physical activity",
					"Limit caffeine and alcohol",
					"Adequate sleep",
					"Consider cognitive behavioral therapy",
				},
				Monitoring: []string{
					"Track anxiety symptoms and triggers",
					"Monitor response to medication",
					"Watch for side effects",
					"Regular therapy sessions if applicable",
					"Evaluate stress levels",
				},
			},
			{
				ID:       "insomnia",
				Symptoms: []string{"difficulty falling asleep", "waking up during the night", "waking too early", "daytime tiredness", "irritability", "difficulty focusing"},
				Medications: []Medication{
					{"Zolpidem", 0.84},
					{"Eszopiclone", 0.82},
					{"Melatonin", 0.70},
					{"Doxepin", 0.75},
					{"Trazodone", 0.78},
				},
				Lifestyle: []string{
					"Consistent sleep schedule",
					"Create relaxing bedtime routine",
					"Avoid screens before bed",
					"Make bedroom comfortable and dark",
					"Avoid caffeine and large meals before bed",
				},
			},
			{
				ID:       "asthma",
				Symptoms: []string{"shortness of breath", "chest tightness", "wheezing", "coughing", "trouble sleeping", "breathing problems"},
				Medications: []Medication{
					{"Albuterol", 0.88},
					{"Fluticasone", 0.85},
					{"Montelukast", 0.82},
					{"Budesonide", 0.83},
					{"Formoterol", 0.81},
				},
				Lifestyle: []string{
					"Identify and avoid triggers",
					"Use air purifiers at home",
					"Regular exercise with appropriate precautions",
					"Maintain healthy weight",
					"Annual flu vaccination",
				},
			},
			{
				ID:       "allergies",
				Symptoms: []string{"sneezing", "itching", "nasal congestion", "runny nose", "watery eyes", "skin rash", "hives"},
				Medications: []Medication{
					{"Cetirizine", 0.85},
					{"Loratadine", 0.82},
					{"Fexofenadine", 0.84},
					{"Desloratadine", 0.81},
					{"Diphenhydramine", 0.78},
				},
				Lifestyle: []string{
					"Identify and avoid allergens",
					"HEPA filters for home",
					"Keep windows closed during high pollen seasons",
					"Regular cleaning to reduce dust and pet dander",
					"Consider allergen covers for bedding",
				},
			},
			{
				ID:       "migraine",
				Symptoms: []string{"intense headache", "throbbing pain", "nausea", "vomiting", "sensitivity to light", "sensitivity to sound", "aura"},
				Medications: []Medication{
					{"Sumatriptan", 0.86},
					{"Rizatriptan", 0.84},
					{"Propranolol", 0.80},
					{"Topiramate", 0.82},
					{"Amitriptyline", 0.79},
				},
				Lifestyle: []string{
					"Identify and avoid personal triggers",
					"Maintain regular sleep and meal schedule",
					"Stress management techniques",
					"Stay hydrated",
					"Regular physical activity",
				},
			},
			{
				ID:       "gerd",
				Symptoms: []string{"heartburn", "chest pain", "difficulty swallowing", "regurgitation", "sour taste", "feeling of lump in throat"},
				Medications: []Medication{
					{"Omeprazole", 0.87},
					{"Pantoprazole", 0.85},
					{"Famotidine", 0.81},
					{"Ranitidine", 0.78},
					{"Lansoprazole", 0.84},
				},
				Lifestyle: []string{
					"Avoid lying down after eating",
					"Elevate head of bed",
					"Avoid trigger foods (spicy, acidic, fatty)",
					"Smaller, more frequent meals",
					"Maintain healthy weight",
				},
			},
			{
				ID:       "hypercholesterolemia",
				Symptoms: []string{"no symptoms typically", "high cholesterol levels", "family history of heart disease"},
				Medications: []Medication{
					{"Atorvastatin", 0.88},
					{"Rosuvastatin", 0.89},
					{"Simvastatin", 0.85},
					{"Pravastatin", 0.82},
					{"Ezetimibe", 0.79},
				},
				Lifestyle: []string{
					"Mediterranean or DASH diet",
					"Regular physical activity",
					"Limit saturated and trans fats",
					"Increase fiber intake",
					"Maintain healthy weight",
				},
			},
		},

		Synonyms: []Synonym{
			{"headache", []string{"head pain", "migraine", "tension headache", "head pressure", "throbbing head"}},
			{"nausea", []string{"sick to stomach", "feel like vomiting", "queasy", "upset stomach"}},
			{"fatigue", []string{"tired", "exhaustion", "lethargy", "lack of energy", "exhausted", "weary"}},
			{"dizziness", []string{"lightheaded", "vertigo", "feeling faint", "spinning", "unsteady"}},
			{"pain", []string{"ache", "discomfort", "soreness", "hurt", "aching", "tender"}},
			{"rash", []string{"hives", "skin eruption", "breakout", "skin irritation", "dermatitis"}},
			{"fever", []string{"high temperature", "elevated temperature", "hot", "feverish", "running a temperature"}},
			{"cough", []string{"hack", "wheeze", "barking", "persistent cough", "dry cough"}},
			{"shortness of breath", []string{"difficulty breathing", "breathlessness", "can't catch breath", "labored breathing", "dyspnea"}},
		},

		ContextKeywords: map[string][]string{
			"hypertension": {"pressure", "high", "stress", "heart"},
			"diabetes":     {"sugar", "thirsty", "glucose", "insulin"},
			"asthma":       {"breath", "chest", "wheeze", "trigger"},
		},

		Interactions: map[InteractionKey]string{
			{"asthma", "aspirin"}:     "Aspirin should NOT be used by people with asthma. It can trigger bronchospasm and serious respiratory problems.",
			{"anxiety", "caffeine"}:   "Caffeine can worsen anxiety symptoms and reduce the effectiveness of anxiety medications.",
			{"gerd", "aspirin"}:       "Aspirin and other NSAIDs can worsen GERD symptoms by irritating the esophagus and stomach lining.",
			{"depression", "alcohol"}: "Alcohol is a depressant and can worsen depression symptoms and interact with antidepressants.",
		},

		Advisories: []Advisory{
			{Condition: "hypertension", Drug: "ibuprofen", Note: "NSAIDs like ibuprofen may increase blood pressure and reduce effectiveness of hypertension medications."},
			{Drug: "warfarin", Medications: []string{"nsaid", "aspirin"}, Note: "Warfarin with NSAIDs or aspirin increases bleeding risk."},
			{Drug: "ssri", Medications: []string{"maoi"}, Note: "SSRIs with MAOIs can cause serotonin syndrome, a potentially life-threatening condition."},
		},

		AgeAdjustments: map[AgeCategory][]Adjustment{
			AgeElderly: {
				{"Benzodiazepines", -0.25},
				{"NSAIDs", -0.20},
				{"Zolpidem", -0.15},
				{"Anticholinergics", -0.25},
				{"Insulin", -0.10},
				{"Warfarin", -0.10},
				{"Muscle relaxants", -0.20},
				{"Statins", -0.05},
				{"Digoxin", -0.15},
				{"Antipsychotics", -0.25},
			},
			AgePediatric: {
				{"Tetracyclines", -0.70},
				{"Aspirin", -0.80},
				{"Fluoroquinolones", -0.70},
				{"Statins", -0.70},
				{"ACE inhibitors", -0.60},
				{"Adult-strength formulations", -0.50},
				{"Dextromethorphan", -0.30},
				{"Codeine", -0.60},
			},
			AgeAdult: {
				{"Pediatric formulations", -0.50},
				{"Geriatric-specific medications", -0.30},
			},
		},

		GenderAdjustments: map[string][]Adjustment{
			"female": {
				{"ACE inhibitors", -0.15},
				{"Statins", -0.10},
				{"Warfarin", -0.15},
				{"Valproate", -0.20},
				{"Finasteride", -0.90},
				{"Sildenafil", -0.40},
				{"Minoxidil", -0.20},
				{"Isotretinoin", -0.20},
			},
			"male": {
				{"Finasteride", 0.10},
				{"Sildenafil", 0.10},
				{"Tamsulosin", 0.15},
				{"Spironolactone", -0.10},
				{"Estrogen medications", -0.90},
			},
			"other": {},
		},

		ConditionAdjustments: map[string][]Adjustment{
			"hypertension": {{"Diuretics", 0.1}, {"Calcium channel blockers", 0.1}},
			"diabetes":     {{"Metformin", 0.1}, {"GLP-1 agonists", 0.1}, {"SGLT2 inhibitors", 0.1}},
			"asthma":       {{"Inhaled corticosteroids", 0.1}, {"Long-acting beta agonists", 0.1}},
			"depression":   {{"SSRIs", 0.1}, {"SNRIs", 0.05}},
			"anxiety":      {{"SSRIs", 0.1}, {"Buspirone", 0.1}},
			"insomnia":     {{"Melatonin", 0.05}, {"Cognitive behavioral therapy", 0.2}},
		},

		DefaultLifestyle: []string{
			"Maintain a balanced diet",
			"Regular physical activity",
			"Adequate sleep",
			"Stress management",
			"Regular medical check-ups",
		},
		DefaultMonitoring: []string{
			"Regular follow-up with healthcare provider",
			"Monitor for medication side effects",
			"Track symptom changes",
			"Report any new symptoms promptly",
		},
	}
}
